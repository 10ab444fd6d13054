package rop

// Catch runs fn and converts a panic raised by this package's contract
// checks into the returned error. Any other panic is re-raised untouched.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch e := r.(type) {
		case *IllegalCallError:
			err = e
		case *IllegalInstantiationError:
			err = e
		default:
			panic(r)
		}
	}()

	fn()
	return nil
}
