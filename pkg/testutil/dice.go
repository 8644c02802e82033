package testutil

// ScriptedRoller replays queued die faces in order. Once the queue runs dry
// it answers every roll with Fallback, clamped to the die size.
type ScriptedRoller struct {
	faces    []int
	Fallback int
	// Sides records the die size of every roll requested, in order.
	Sides []int
}

// NewScriptedRoller queues faces for replay; exhausted queues answer 1.
func NewScriptedRoller(faces ...int) *ScriptedRoller {
	return &ScriptedRoller{faces: faces, Fallback: 1}
}

// Roll returns the next queued face.
func (r *ScriptedRoller) Roll(sides int) int {
	r.Sides = append(r.Sides, sides)
	if len(r.faces) == 0 {
		if r.Fallback > sides {
			return sides
		}
		return r.Fallback
	}
	face := r.faces[0]
	r.faces = r.faces[1:]
	return face
}

// Remaining reports how many queued faces are unused.
func (r *ScriptedRoller) Remaining() int {
	return len(r.faces)
}

// TwoD6 splits a 2d6 total into two faces that sum to it.
func TwoD6(total int) []int {
	if total <= 7 {
		return []int{1, total - 1}
	}
	return []int{6, total - 6}
}

// Faces flattens groups of faces into one queue, so scripts can be written
// roll by roll: Faces(TwoD6(7), []int{3}, TwoD6(12)).
func Faces(groups ...[]int) []int {
	var out []int
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// ConstantRoller answers every roll with the same face, clamped to the die.
type ConstantRoller int

// Roll returns the constant face, or sides if the die is smaller.
func (c ConstantRoller) Roll(sides int) int {
	if int(c) > sides {
		return sides
	}
	return int(c)
}
