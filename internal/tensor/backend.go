package tensor

// Backend is the narrow tensor-operation interface the extension ops are
// written against. It is the minimum capability set the library consumes:
// elementwise arithmetic, batched matmul with broadcasting, comparisons,
// masked selection, axis reductions, exp, shape manipulation and casting.
//
// Implementations live under internal/backend; the reference implementation
// is the pure Go CPU backend.
type Backend interface {
	// Element-wise binary operations with broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Matrix operations. MatMul is plain 2D; BatchMatMul treats the trailing
	// two dimensions as matrices and broadcasts all leading dimensions.
	MatMul(a, b *RawTensor) *RawTensor
	BatchMatMul(a, b *RawTensor) *RawTensor

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor
	Chunk(x *RawTensor, n, dim int) []*RawTensor

	// Scalar operations (element-wise with scalar).
	MulScalar(x *RawTensor, scalar any) *RawTensor
	AddScalar(x *RawTensor, scalar any) *RawTensor
	SubScalar(x *RawTensor, scalar any) *RawTensor
	DivScalar(x *RawTensor, scalar any) *RawTensor

	// Math operations (element-wise).
	Exp(x *RawTensor) *RawTensor
	Sqrt(x *RawTensor) *RawTensor

	// Comparison operations (element-wise, return bool tensor).
	Greater(a, b *RawTensor) *RawTensor
	Lower(a, b *RawTensor) *RawTensor
	GreaterEqual(a, b *RawTensor) *RawTensor
	LowerEqual(a, b *RawTensor) *RawTensor
	Equal(a, b *RawTensor) *RawTensor
	NotEqual(a, b *RawTensor) *RawTensor

	// Boolean operations (element-wise on bool tensors).
	Or(a, b *RawTensor) *RawTensor
	And(a, b *RawTensor) *RawTensor
	Not(x *RawTensor) *RawTensor

	// Reduction operations along a dimension.
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor
	MaxDim(x *RawTensor, dim int, keepDim bool) *RawTensor

	// Indexing operations.
	Where(condition, x, y *RawTensor) *RawTensor

	// Type conversion.
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata.
	Name() string
	Device() Device
}
