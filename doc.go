// Package tensorext extends the core tensor package with operations common
// in attention-based models: triangular masking (Triu, Tril), boolean
// negation (LogicalNot), constant-filled companions (ValuesLike), masked
// filling, identity batches (Eye), outer products, tensor splitting (Chunk,
// Unbind), elementwise comparison (Equal, AllClose), and scaled dot-product
// attention.
//
// Every operation works through the tensor.Backend seam, so any backend a
// tensor was created on carries through to the result. The functions here
// never mutate their inputs; each returns a freshly allocated tensor.
//
//	b := cpu.New()
//	q := tensor.Randn[float32](tensor.Shape{2, 8, 16, 64}, b)
//	k := tensor.Randn[float32](tensor.Shape{2, 8, 16, 64}, b)
//	v := tensor.Randn[float32](tensor.Shape{2, 8, 16, 64}, b)
//
//	out, err := tensorext.ScaledDotProductAttention(q, k, v,
//		tensorext.AttentionConfig[float32, *cpu.Backend]{IsCausal: true})
package tensorext
