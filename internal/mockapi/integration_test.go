package mockapi_test

import (
	"context"
	"net"
	"testing"

	"github.com/f3rmion/wordahead/internal/api"
	"github.com/f3rmion/wordahead/internal/mockapi"
	"github.com/f3rmion/wordahead/internal/reader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startMock(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := mockapi.New(mockapi.Options{})
	go s.App().Listener(ln)
	t.Cleanup(func() { _ = s.Shutdown() })

	return "http://" + ln.Addr().String()
}

func TestReaderAgainstMockService(t *testing.T) {
	client := api.NewClient(startMock(t))
	ctx := context.Background()

	var in reader.Input
	in.SetText("We walked through the forest.")
	require.NoError(t, in.Submit(ctx, client))

	words := in.Words()
	require.Len(t, words, 5)
	assert.Equal(t, "forest.", words[4].Word)

	panel := reader.NewPanel(0, nil)
	ticket := panel.Select(4, words[4])
	require.True(t, panel.Fetch(ctx, client, ticket))

	sel := panel.Selection()
	assert.Equal(t, "יער", sel.Translation)
	assert.Equal(t, "ya'ar", sel.Transliteration)
	assert.Equal(t, "A2", sel.CEFRLevel)
	assert.Equal(t, words[4].Opacity, sel.Opacity)

	tr, err := client.TranslateSentence(ctx, reader.SentenceAt(words, 4))
	require.NoError(t, err)
	assert.Equal(t, "We walked through the forest.", tr.English)
}

func TestReaderAgainstMockService_ServerRejectsBlank(t *testing.T) {
	client := api.NewClient(startMock(t))

	// The mock trims and rejects; the reader only validates locally, so a
	// direct call shows the server-side status mapping.
	_, err := client.ProcessText(context.Background(), "   ")
	require.Error(t, err)

	var in reader.Input
	in.SetText("x")
	_, seq, err := in.Begin()
	require.NoError(t, err)
	in.Finish(seq, nil, &api.StatusError{Code: 400})
	assert.Equal(t, "Failed to process text: Server error: 400", in.ErrorMessage())
}
