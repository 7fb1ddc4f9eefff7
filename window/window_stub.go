//go:build !ebiten

package window

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/utils"
)

// ErrNoWindow is returned by Run when the binary was built without the ebiten tag.
var ErrNoWindow = errors.New("the window renderer requires building with -tags ebiten")

// Run always fails in builds without the ebiten tag.
func Run(*model.Grid, utils.Config) error {
	return ErrNoWindow
}
