package chessmg

import "golang.org/x/exp/constraints"

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func sign[T constraints.Signed](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
