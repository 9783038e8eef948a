package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarigelamin1997/tradesense-sub009/internal/cli"
	"github.com/tarigelamin1997/tradesense-sub009/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		assert.NotNil(t, root)
		assert.Equal(t, "tradesense", root.Use)
	})
}
