package terminal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(r *inputReader) []Event {
	var evs []Event
	for {
		select {
		case ev := <-r.eventCh:
			evs = append(evs, ev)
		default:
			return evs
		}
	}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		consumed int
		keys     []Key
		runes    []rune
	}{
		{"printable", "q", 1, []Key{KeyRune}, []rune{'q'}},
		{"ctrl c", "\x03", 1, []Key{KeyCtrlC}, []rune{0}},
		{"enter", "\r", 1, []Key{KeyEnter}, []rune{0}},
		{"lone escape pending", "\x1b", 0, nil, nil},
		{"double escape", "\x1b\x1b[A", 4, []Key{KeyEscape}, []rune{0}},
		{"arrow swallowed", "\x1b[Aq", 4, []Key{KeyRune}, []rune{'q'}},
		{"ss3 swallowed", "\x1bOPx", 4, []Key{KeyRune}, []rune{'x'}},
		{"incomplete csi", "q\x1b[1;", 1, []Key{KeyRune}, []rune{'q'}},
		{"alt key swallowed", "\x1bq", 2, nil, nil},
		{"utf8", "é", 2, []Key{KeyRune}, []rune{'é'}},
		{"utf8 partial", "\xc3", 0, nil, nil},
		{"unmapped control", "\x01", 1, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newInputReader(newFakeBackend(1, 1))
			assert.Equal(t, tt.consumed, r.parseInput([]byte(tt.data)))

			evs := drain(r)
			require.Len(t, evs, len(tt.keys))
			for i, ev := range evs {
				assert.Equal(t, EventKey, ev.Type)
				assert.Equal(t, tt.keys[i], ev.Key, "event %d", i)
				assert.Equal(t, tt.runes[i], ev.Rune, "event %d", i)
			}
		})
	}
}

func TestEscapeLenLongRunDiscarded(t *testing.T) {
	data := append([]byte("\x1b["), make([]byte, 40)...)
	for i := 2; i < len(data); i++ {
		data[i] = '1'
	}
	assert.Equal(t, maxEscapeLen, escapeLen(data))
}

func waitEvent(t *testing.T, r *inputReader) Event {
	t.Helper()
	select {
	case ev := <-r.events():
		return ev
	case <-time.After(time.Second):
		t.Fatal("no event")
	}
	return Event{}
}

func TestReadLoopLoneEscape(t *testing.T) {
	b := newFakeBackend(1, 1)
	r := newInputReader(b)
	r.start()
	defer r.stop()

	b.in <- []byte{0x1b}
	ev := waitEvent(t, r)
	assert.Equal(t, KeyEscape, ev.Key)
}

func TestReadLoopSplitSequence(t *testing.T) {
	b := newFakeBackend(1, 1)
	r := newInputReader(b)
	r.start()
	defer r.stop()

	b.in <- []byte("\x1b[")
	b.in <- []byte("Bq")
	ev := waitEvent(t, r)
	assert.Equal(t, KeyRune, ev.Key)
	assert.Equal(t, 'q', ev.Rune)
}

func TestReadLoopClosed(t *testing.T) {
	b := newFakeBackend(1, 1)
	r := newInputReader(b)
	r.start()
	defer r.stop()

	close(b.in)
	ev := waitEvent(t, r)
	assert.Equal(t, EventClosed, ev.Type)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "Ctrl+C", KeyCtrlC.String())
	assert.Equal(t, "Unknown", Key(999).String())
}
