package vecmath

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul returns the component-wise product of v and o.
func (v Vector3) Mul(o Vector3) Vector3 {
	return Vector3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

// Div returns the component-wise quotient of v and o.
func (v Vector3) Div(o Vector3) Vector3 {
	return Vector3{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

func (v Vector3) AddScalar(s float64) Vector3 {
	return Vector3{v.X + s, v.Y + s, v.Z + s}
}

func (v Vector3) SubScalar(s float64) Vector3 {
	return Vector3{v.X - s, v.Y - s, v.Z - s}
}

func (v Vector3) MulScalar(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector3) DivScalar(s float64) Vector3 {
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

// Neg returns -v.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

func Add(a, b Vector3) Vector3      { return a.Add(b) }
func Subtract(a, b Vector3) Vector3 { return a.Sub(b) }
func Multiply(a, b Vector3) Vector3 { return a.Mul(b) }
func Divide(a, b Vector3) Vector3   { return a.Div(b) }

// ScaleBy returns v with every component multiplied by s.
func ScaleBy(v Vector3, s float64) Vector3 { return v.MulScalar(s) }

// ScalarAdd returns s + v, identical to v.AddScalar(s).
func ScalarAdd(s float64, v Vector3) Vector3 { return v.AddScalar(s) }

// ScalarMultiply returns s * v, identical to v.MulScalar(s).
func ScalarMultiply(s float64, v Vector3) Vector3 { return v.MulScalar(s) }

// ScalarSubtract returns s - v, that is (s-x, s-y, s-z).
//
// Older releases computed v - s here. Callers that relied on that result
// should use v.SubScalar(s).
func ScalarSubtract(s float64, v Vector3) Vector3 {
	return Vector3{s - v.X, s - v.Y, s - v.Z}
}
