package reader

import (
	"math/big"

	"github.com/dloscutoff/go-appleseed/pkg/types"
)

func newIntFromString(token string) (types.Int, bool) {
	b, ok := new(big.Int).SetString(token, 10)
	if !ok {
		return types.Int{}, false
	}
	return types.NewIntFromBig(b), true
}
