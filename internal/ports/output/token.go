package output

// TokenGenerator issues opaque check-in credentials. Generated values must be
// drawn from a space large enough that collisions are negligible; the
// registry still retries on the off chance the store reports one.
type TokenGenerator interface {
	Generate() (string, error)
}
