package logger

import (
	"log/slog"
	"testing"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestModuleProvidesLogger(t *testing.T) {
	var resolved *slog.Logger

	app := fxtest.New(t, Module, fx.Populate(&resolved))
	defer app.RequireStop()
	app.RequireStart()

	if resolved == nil {
		t.Fatal("expected logger to be populated")
	}
	if resolved.Handler() == nil {
		t.Fatal("expected logger to carry a handler")
	}
}
