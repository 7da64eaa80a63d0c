package pmatch

// Const returns a function that produces a. It is handy as a default handler:
//
//     pmatch.Match[int](x).Case(…).Default(pmatch.Const(0))
//
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Return returns a handler which ignores the subject and produces u.
func Return[U any](u U) func(any) U {
	return func(any) U {
		return u
	}
}

// Handler adapts a function without arguments to a handler.
func Handler[U any](f func() U) func(any) U {
	return func(any) U {
		return f()
	}
}
