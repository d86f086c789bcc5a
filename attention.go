package tensorext

import (
	"math"

	"github.com/pkg/errors"
	"github.com/tensorext/tensorext/tensor"
)

// Finite stand-ins for -inf when masking attention scores. Keeping them
// finite means a row with every position excluded softmaxes to uniform
// weights instead of NaN.
const (
	maskFill32 = -1e9
	maskFill64 = -1e30
)

// AttentionConfig carries the optional behavior of ScaledDotProductAttention.
// The zero value is plain unmasked attention with default scaling.
type AttentionConfig[T tensor.DType, B tensor.Backend] struct {
	// IsCausal masks each query position to attend only to keys at or
	// before it (lower triangular). Mutually exclusive with BoolMask and
	// AddMask.
	IsCausal bool

	// BoolMask marks allowed positions: true attends, false excludes.
	// Broadcasts against the [..., Lq, Lk] score shape.
	BoolMask *tensor.Tensor[bool, B]

	// AddMask is added to the scaled scores before softmax, the usual
	// additive-bias form. Broadcasts against the score shape.
	AddMask *tensor.Tensor[T, B]

	// DropoutP zeroes each attention weight with this probability when
	// Training is set, scaling survivors by 1/(1-p). Must lie in [0, 1).
	DropoutP float64

	// Training enables dropout. When false DropoutP is ignored, so the
	// same config serves both phases.
	Training bool

	// Scale overrides the default score scaling of 1/sqrt(headDim).
	Scale *float64
}

func (cfg *AttentionConfig[T, B]) validate() error {
	if cfg.IsCausal && (cfg.BoolMask != nil || cfg.AddMask != nil) {
		return errors.Wrap(ErrConfig, "attention: IsCausal is mutually exclusive with an explicit mask")
	}
	if cfg.BoolMask != nil && cfg.AddMask != nil {
		return errors.Wrap(ErrConfig, "attention: at most one of BoolMask and AddMask may be set")
	}
	if cfg.DropoutP < 0 || cfg.DropoutP >= 1 {
		return errors.Wrapf(ErrConfig, "attention: dropout probability %v outside [0, 1)", cfg.DropoutP)
	}
	return nil
}

// ScaledDotProductAttention computes softmax(q @ k^T * scale + mask) @ v
// over the trailing two dimensions of its inputs. Query is [..., Lq, D],
// key [..., Lk, D], value [..., Lk, Dv]; leading batch dimensions broadcast
// against each other and the output is [..., Lq, Dv].
//
// Scores for excluded positions are pushed to a large negative value before
// softmax. A query row with every key excluded therefore yields uniform
// weights over Lk rather than NaN.
func ScaledDotProductAttention[T tensor.DType, B tensor.Backend](query, key, value *tensor.Tensor[T, B], cfg AttentionConfig[T, B]) (*tensor.Tensor[T, B], error) {
	out, _, err := attention(query, key, value, cfg, false)
	return out, err
}

// ScaledDotProductAttentionWithWeights is ScaledDotProductAttention but also
// returns the post-softmax (and post-dropout) attention weights of shape
// [..., Lq, Lk].
func ScaledDotProductAttentionWithWeights[T tensor.DType, B tensor.Backend](query, key, value *tensor.Tensor[T, B], cfg AttentionConfig[T, B]) (*tensor.Tensor[T, B], *tensor.Tensor[T, B], error) {
	return attention(query, key, value, cfg, true)
}

func attention[T tensor.DType, B tensor.Backend](query, key, value *tensor.Tensor[T, B], cfg AttentionConfig[T, B], wantWeights bool) (*tensor.Tensor[T, B], *tensor.Tensor[T, B], error) {
	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}
	if err := checkAttentionShapes(query.Shape(), key.Shape(), value.Shape()); err != nil {
		return nil, nil, err
	}
	dt := query.DType()
	if dt != tensor.Float32 && dt != tensor.Float64 {
		return nil, nil, errors.Wrapf(ErrType, "attention: requires a float32 or float64 tensor, got %s", dt)
	}

	qs := query.Shape()
	ks := key.Shape()
	headDim := qs[len(qs)-1]
	Lq := qs[len(qs)-2]
	Lk := ks[len(ks)-2]

	perm := make([]int, len(ks))
	for i := range perm {
		perm[i] = i
	}
	perm[len(perm)-2], perm[len(perm)-1] = perm[len(perm)-1], perm[len(perm)-2]
	kT := key.Transpose(perm...)

	scale := 1 / math.Sqrt(float64(headDim))
	if cfg.Scale != nil {
		scale = *cfg.Scale
	}
	scores := query.MatMul(kT).MulScalar(scalarOf[T](scale))

	fill := maskFill64
	if dt == tensor.Float32 {
		fill = maskFill32
	}
	switch {
	case cfg.IsCausal:
		keep := bandKeepMask(Lq, Lk, 0, false, query.Backend())
		excluded := tensor.New[bool](query.Backend().Not(keep.Raw()), query.Backend())
		masked, err := MaskedFill(scores, excluded, scalarOf[T](fill))
		if err != nil {
			return nil, nil, err
		}
		scores = masked
	case cfg.BoolMask != nil:
		if _, _, err := tensor.BroadcastShapes(scores.Shape(), cfg.BoolMask.Shape()); err != nil {
			return nil, nil, errors.Wrapf(ErrShape, "attention: boolean mask %v does not broadcast against scores %v", cfg.BoolMask.Shape(), scores.Shape())
		}
		b := query.Backend()
		excluded := tensor.New[bool](b.Not(cfg.BoolMask.Raw()), b)
		masked, err := MaskedFill(scores, excluded, scalarOf[T](fill))
		if err != nil {
			return nil, nil, err
		}
		scores = masked
	case cfg.AddMask != nil:
		if cfg.AddMask.DType() != dt {
			return nil, nil, errors.Wrapf(ErrType, "attention: additive mask dtype %s differs from query dtype %s", cfg.AddMask.DType(), dt)
		}
		if _, _, err := tensor.BroadcastShapes(scores.Shape(), cfg.AddMask.Shape()); err != nil {
			return nil, nil, errors.Wrapf(ErrShape, "attention: additive mask %v does not broadcast against scores %v", cfg.AddMask.Shape(), scores.Shape())
		}
		scores = scores.Add(cfg.AddMask)
	}

	weights := softmaxLastDim(scores)
	if cfg.Training && cfg.DropoutP > 0 {
		weights = dropout(weights, cfg.DropoutP)
	}

	out := weights.MatMul(value)
	if !wantWeights {
		return out, nil, nil
	}
	return out, weights, nil
}

func checkAttentionShapes(qs, ks, vs tensor.Shape) error {
	if len(qs) < 2 || len(ks) < 2 || len(vs) < 2 {
		return errors.Wrapf(ErrShape, "attention: query, key, and value must have at least 2 dimensions, got %v, %v, %v", qs, ks, vs)
	}
	headDim := qs[len(qs)-1]
	if ks[len(ks)-1] != headDim {
		return errors.Wrapf(ErrShape, "attention: key head dimension %d differs from query head dimension %d", ks[len(ks)-1], headDim)
	}
	Lk := ks[len(ks)-2]
	if vs[len(vs)-2] != Lk {
		return errors.Wrapf(ErrShape, "attention: value has %d rows but key has %d", vs[len(vs)-2], Lk)
	}
	qkBatch, _, err := tensor.BroadcastShapes(qs[:len(qs)-2], ks[:len(ks)-2])
	if err != nil {
		return errors.Wrapf(ErrShape, "attention: query and key batch dimensions do not broadcast: %v vs %v", qs[:len(qs)-2], ks[:len(ks)-2])
	}
	if _, _, err := tensor.BroadcastShapes(qkBatch, vs[:len(vs)-2]); err != nil {
		return errors.Wrapf(ErrShape, "attention: value batch dimensions do not broadcast: %v vs %v", vs[:len(vs)-2], qkBatch)
	}
	return nil
}

// softmaxLastDim is the numerically stable softmax over the last dimension:
// subtract the per-row max before exponentiating so large scores cannot
// overflow.
func softmaxLastDim[T tensor.DType, B tensor.Backend](x *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	m := x.MaxDim(-1, true)
	e := x.Sub(m).Exp()
	s := e.SumDim(-1, true)
	return e.Div(s)
}

// dropout applies inverted dropout: surviving weights are scaled by
// 1/(1-p) so the expected row sum stays 1.
func dropout[T tensor.DType, B tensor.Backend](w *tensor.Tensor[T, B], p float64) *tensor.Tensor[T, B] {
	b := w.Backend()
	u := tensor.Rand[T](w.Shape(), b)
	threshold := tensor.Full(tensor.Shape{1}, scalarOf[T](p), b)
	keep := u.GreaterEqual(threshold)
	scaled := w.MulScalar(scalarOf[T](1 / (1 - p)))
	return tensor.Where(keep, scaled, tensor.Zeros[T](w.Shape(), b))
}
