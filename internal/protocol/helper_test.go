package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_FlatFormat(t *testing.T) {
	t.Parallel()

	msg, err := NewMessage(MsgGuess, GuessPayload{Guess: "cat"})
	require.NoError(t, err)

	data, err := msg.Encode()
	require.NoError(t, err)

	// type field sits at the same level as the payload fields
	assert.JSONEq(t, `{"type":"guess","guess":"cat"}`, string(data))
}

func TestEncode_NoPayload(t *testing.T) {
	t.Parallel()

	msg, err := NewMessage(MsgClear, nil)
	require.NoError(t, err)

	data, err := msg.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"clear"}`, string(data))
}

func TestEncode_EmptyObjectPayload(t *testing.T) {
	t.Parallel()

	msg, err := NewMessage(MsgClear, struct{}{})
	require.NoError(t, err)

	data, err := msg.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"clear"}`, string(data))
}

func TestNewMessage_RejectsNonObject(t *testing.T) {
	t.Parallel()

	_, err := NewMessage(MsgGuess, "just a string")
	assert.ErrorIs(t, err, ErrNotObject)

	_, err = NewMessage(MsgGuess, []int{1, 2})
	assert.ErrorIs(t, err, ErrNotObject)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	msg, err := Decode([]byte(`{"type":"guess","guess":"cat"}`))
	require.NoError(t, err)
	assert.Equal(t, MsgGuess, msg.Type)

	p, err := ParsePayload[GuessPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, "cat", p.Guess)
}

func TestDecode_MissingType(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte(`{"guess":"cat"}`))
	assert.ErrorIs(t, err, ErrMissingType)

	_, err = Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestRoundStartPayload_WordVisibility(t *testing.T) {
	t.Parallel()

	// Drawer message carries the word
	word := "cat"
	msg := MustNewMessage(MsgRoundStart, RoundStartPayload{
		Word:        &word,
		YouDraw:     true,
		RoundTime:   80,
		DrawerIntro: true,
	})
	data, err := msg.Encode()
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "cat", raw["word"])
	assert.NotContains(t, raw, "wordLength")

	// Guesser message carries only the length, word is explicit null
	msg = MustNewMessage(MsgRoundStart, RoundStartPayload{
		YouDraw:     false,
		RoundTime:   80,
		WordLength:  3,
		DrawerIntro: true,
	})
	data, err = msg.Encode()
	require.NoError(t, err)

	raw = nil
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Nil(t, raw["word"])
	assert.InDelta(t, 3, raw["wordLength"], 0)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	in := MustNewMessage(MsgCorrect, CorrectPayload{
		PlayerID:   "p1",
		Name:       "alice",
		Scores:     map[string]int{"p1": 100},
		GuessOrder: 1,
		Points:     100,
	})

	data, err := in.Encode()
	require.NoError(t, err)

	out, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, MsgCorrect, out.Type)

	p, err := ParsePayload[CorrectPayload](out)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Name)
	assert.Equal(t, 100, p.Scores["p1"])
}
