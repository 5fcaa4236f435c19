package main

import (
	"bytes"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interview-go/internal/demo"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = ioutil.Discard

	err := app.Run(append([]string{"singleton"}, args...))

	return out.String(), err
}

func TestDefaultActionRunsReflect(t *testing.T) {
	out, err := runApp(t)
	require.NoError(t, err)
	assert.Equal(t, "reflect: false\n", out)
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no attack", []string{"run"}, "reflect: false\n"},
		{"one attack", []string{"run", "-a", "generic"}, "generic: true\n"},
		{
			"several attacks",
			[]string{"run", "-a", "serialize-json", "--attack", "serialize-json-resolve"},
			"serialize-json: false\nserialize-json-resolve: true\n",
		},
		{"debug log level", []string{"--log-level", "debug", "run", "-a", "supplier"}, "supplier: true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runApp(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestRunGuardedReportsError(t *testing.T) {
	out, err := runApp(t, "run", "-a", "reflect-guarded")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "reflect-guarded: error: singleton: reflect-guarded instance already exists"))
}

func TestRunUnknownAttack(t *testing.T) {
	out, err := runApp(t, "run", "-a", "enum")
	assert.EqualError(t, err, `unknown attack "enum"`)
	assert.Empty(t, out)
}

func TestRunInvalidLogLevel(t *testing.T) {
	_, err := runApp(t, "--log-level", "loud", "run")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := runApp(t, "list")
	require.NoError(t, err)
	assert.Equal(t, strings.Join(demo.Names(), "\n")+"\n", out)
	assert.Contains(t, out, "serialize-hessian-resolve\n")
}
