package terminal

import (
	"io"
	"os"
	"testing"

	"gridcaster/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init("error", "text", io.Discard)
	os.Exit(m.Run())
}
