package apiprop

// Decorator turns a configuration record into sink-specific field metadata.
// The result is opaque to the builder.
type Decorator interface {
	Decorate(Options) (any, error)
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(Options) (any, error)

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(opts Options) (any, error) {
	return fn(opts)
}

// PassThrough returns the record itself. Builders without a decorator use it.
var PassThrough Decorator = DecoratorFunc(func(opts Options) (any, error) {
	return opts, nil
})
