package ingestion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/parsing"
)

const readableSample = "Jane Smith\nSenior Engineer at Acme Corp building reliable systems"

func fixed(text string, err error) func(context.Context, []byte) (string, error) {
	return func(context.Context, []byte) (string, error) {
		return text, err
	}
}

func TestStrategiesFor(t *testing.T) {
	pdfStrategies, err := StrategiesFor(FormatPDF)
	require.NoError(t, err)
	var names []string
	for _, s := range pdfStrategies {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{StrategyTextLayer, StrategyContentStream, StrategyRawScan}, names)

	docxStrategies, err := StrategiesFor(FormatDOCX)
	require.NoError(t, err)
	require.Len(t, docxStrategies, 1)
	assert.Equal(t, StrategyDOCX, docxStrategies[0].Name)

	_, err = StrategiesFor(Format("odt"))
	var unsupported *UnsupportedFormatError
	assert.True(t, errors.As(err, &unsupported))
}

func TestRunStrategies(t *testing.T) {
	t.Run("first readable candidate wins", func(t *testing.T) {
		strategies := []Strategy{
			{Name: "broken", Decode: fixed("", errors.New("bad xref"))},
			{Name: "garbage", Decode: fixed("%%%% #### 1234 5678 @@@@ ^^^^", nil)},
			{Name: "good", Decode: fixed(readableSample, nil)},
			{Name: "unused", Decode: fixed(readableSample, nil)},
		}

		text, attempts, err := RunStrategies(context.Background(), nil, strategies)
		require.NoError(t, err)
		assert.Equal(t, readableSample, text)
		require.Len(t, attempts, 3)

		var decodeErr *DecodeError
		assert.True(t, errors.As(attempts[0].Err, &decodeErr))
		assert.Equal(t, "broken", decodeErr.Strategy)

		var unreadable *parsing.UnreadableTextError
		assert.True(t, errors.As(attempts[1].Err, &unreadable))
		assert.False(t, attempts[1].Accepted)

		assert.True(t, attempts[2].Accepted)
		assert.Greater(t, attempts[2].Ratio, 0.3)
	})

	t.Run("panics become decode errors", func(t *testing.T) {
		strategies := []Strategy{
			{Name: "panicky", Decode: func(context.Context, []byte) (string, error) { panic("malformed stream") }},
			{Name: "good", Decode: fixed(readableSample, nil)},
		}

		_, attempts, err := RunStrategies(context.Background(), nil, strategies)
		require.NoError(t, err)
		require.Len(t, attempts, 2)
		assert.Contains(t, attempts[0].Error, "panic: malformed stream")
	})

	t.Run("all strategies exhausted", func(t *testing.T) {
		strategies := []Strategy{
			{Name: "one", Decode: fixed("", errors.New("no text"))},
			{Name: "two", Decode: fixed("short", nil)},
		}

		_, attempts, err := RunStrategies(context.Background(), nil, strategies)
		require.Error(t, err)
		assert.Len(t, attempts, 2)

		var unreadable *parsing.UnreadableTextError
		require.True(t, errors.As(err, &unreadable))
		assert.Len(t, unreadable.Reasons, 2)
		assert.Contains(t, unreadable.UserMessage(), parsing.UnreadableHint)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := RunStrategies(ctx, nil, []Strategy{{Name: "good", Decode: fixed(readableSample, nil)}})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
