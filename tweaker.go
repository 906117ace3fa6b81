package silentpay

import "fmt"

// Tweaker derives tweaked output keys under a fixed hash suite. It holds no
// mutable state and may be shared between goroutines.
type Tweaker struct {
	suite Suite
}

// NewTweaker returns a Tweaker for suite, which must have a hash constructor.
func NewTweaker(suite Suite) (*Tweaker, error) {
	if suite.New == nil {
		str := fmt.Sprintf("suite %q has no hash constructor", suite.Name)
		return nil, makeError(ErrEncodingMismatch, str)
	}
	return &Tweaker{suite: suite}, nil
}

// DefaultTweaker returns a Tweaker using SHA256ECDH.
func DefaultTweaker() *Tweaker {
	return &Tweaker{suite: SHA256ECDH()}
}

func (tw *Tweaker) Suite() Suite {
	return tw.suite
}
