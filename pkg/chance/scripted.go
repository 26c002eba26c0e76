package chance

// Scripted replays fixed values. Once a queue is exhausted it keeps
// returning the fallback: 0 for Intn and 0.99 for Float64, which means
// "no roll fires" under Roll.
type Scripted struct {
	Ints   []int
	Floats []float64
}

func (s *Scripted) Intn(n int) int {
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v >= n {
		return n - 1
	}
	if v < 0 {
		return 0
	}
	return v
}

func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0.99
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}
