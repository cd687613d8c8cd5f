package days

import "golang.org/x/exp/constraints"

func gcd[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}

	return a
}

func lcm[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	return a / gcd(a, b) * b
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

func sum[T constraints.Integer](xs []T) T {
	var s T
	for _, x := range xs {
		s += x
	}

	return s
}
