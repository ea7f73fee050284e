package event

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// recorder collects every event it is handed, tagged with its own id so
// ordering across listeners is observable.
type recorder struct {
	id   string
	seen []string
}

func (r *recorder) Handle(e Event) {
	r.seen = append(r.seen, r.id+":"+e.Name)
}

func TestNotify_AttachmentOrder(t *testing.T) {
	t.Parallel()

	h := NewHost()
	var order []string
	h.Attach(ListenerFunc(func(e Event) { order = append(order, "first:"+e.Name) }))
	h.Attach(ListenerFunc(func(e Event) { order = append(order, "second:"+e.Name) }))

	h.Notify("boot", nil)
	h.Notify("halt", nil)

	want := []string{"first:boot", "second:boot", "first:halt", "second:halt"}
	require.Empty(t, cmp.Diff(want, order))
}

func TestNotify_PayloadDelivered(t *testing.T) {
	t.Parallel()

	h := NewHost()
	var got Event
	h.Attach(ListenerFunc(func(e Event) { got = e }))

	h.Notify("output", map[string]any{"text": "hello"})

	require.Equal(t, "output", got.Name)
	require.Equal(t, "hello", got.Data["text"])
}

func TestAttach_DuplicatesNotifiedPerAttachment(t *testing.T) {
	t.Parallel()

	h := NewHost()
	r := &recorder{id: "r"}
	h.Attach(r)
	h.Attach(r)

	h.Notify("tick", nil)

	require.Equal(t, []string{"r:tick", "r:tick"}, r.seen)
}

func TestDetach_RemovesFirstAttachment(t *testing.T) {
	t.Parallel()

	h := NewHost()
	r := &recorder{id: "r"}
	h.Attach(r)
	h.Attach(r)
	h.Detach(r)

	h.Notify("tick", nil)

	require.Equal(t, []string{"r:tick"}, r.seen)
}

func TestDetach_UnattachedIsNoop(t *testing.T) {
	t.Parallel()

	h := NewHost()
	attached := &recorder{id: "a"}
	h.Attach(attached)

	h.Detach(&recorder{id: "stranger"})
	h.Notify("tick", nil)

	require.Equal(t, []string{"a:tick"}, attached.seen)
}

func TestDetach_ListenerFunc(t *testing.T) {
	t.Parallel()

	h := NewHost()
	called := false
	f := ListenerFunc(func(Event) { called = true })
	h.Attach(f)
	h.Detach(f)

	h.Notify("tick", nil)

	require.False(t, called)
}

func TestNotify_PanicAbortsRemainingDispatch(t *testing.T) {
	t.Parallel()

	h := NewHost()
	reachedLast := false
	h.Attach(ListenerFunc(func(Event) { panic("listener blew up") }))
	h.Attach(ListenerFunc(func(Event) { reachedLast = true }))

	require.PanicsWithValue(t, "listener blew up", func() {
		h.Notify("tick", nil)
	})
	require.False(t, reachedLast, "listeners after the panicking one must not run")
}
