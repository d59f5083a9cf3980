package main

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-username", "alice", "-password", "pw", "-currencies", "EUR/USD"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "alice", opts.username)
	assert.Equal(t, "pw", opts.password)
	assert.Equal(t, "EUR/USD", opts.currencies)
	assert.Equal(t, ".", opts.configDir)
}

func TestParseFlags_UsernameRequired(t *testing.T) {
	_, err := parseFlags([]string{"-password", "pw"}, io.Discard)
	assert.EqualError(t, err, "-username is required")
}

func TestParseCurrencies(t *testing.T) {
	assert.Nil(t, parseCurrencies(""))
	assert.Nil(t, parseCurrencies(" , "))

	prefs := parseCurrencies("eur/usd, GBP/USD,")
	require.NotNil(t, prefs)
	assert.Equal(t, []string{"EUR/USD", "GBP/USD"}, prefs.PreferredCurrencies)
}

func TestPromptPassword(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	var out bytes.Buffer
	pw, err := promptPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw)
	assert.Contains(t, out.String(), "Enter password: ")

	readPassword = func(int) ([]byte, error) { return nil, errors.New("not a terminal") }
	_, err = promptPassword(io.Discard)
	assert.ErrorContains(t, err, "not a terminal")
}
