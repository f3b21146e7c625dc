package switcher

import (
	"errors"

	"github.com/1broseidon/tabswitch/internal/discovery"
	"github.com/1broseidon/tabswitch/internal/platform"
)

var errEndOfEvents = errors.New("no more events")

type fillCall struct {
	ink   platform.Ink
	rects []platform.Rect
}

type textCall struct {
	x, y int
	text string
}

type fakeSurface struct {
	fills     []fillCall
	lines     int
	texts     []textCall
	flushes   int
	grabErr   error
	grabbed   bool
	ungrabs   int
	destroyed int
}

func (s *fakeSurface) Fill(ink platform.Ink, rects ...platform.Rect) error {
	s.fills = append(s.fills, fillCall{ink: ink, rects: rects})
	return nil
}

func (s *fakeSurface) Line(platform.Ink, int, int, int, int) error {
	s.lines++
	return nil
}

func (s *fakeSurface) Text(x, y int, text []byte) error {
	s.texts = append(s.texts, textCall{x: x, y: y, text: string(text)})
	return nil
}

func (s *fakeSurface) Flush() error {
	s.flushes++
	return nil
}

func (s *fakeSurface) GrabKeyboard() error {
	if s.grabErr != nil {
		return s.grabErr
	}
	s.grabbed = true
	return nil
}

func (s *fakeSurface) UngrabKeyboard() {
	s.ungrabs++
	s.grabbed = false
}

func (s *fakeSurface) Destroy() {
	s.destroyed++
}

type fakeWindow struct {
	title   string
	managed bool
	icon    []byte
}

type fakeBackend struct {
	windows []platform.WindowID // bottom-to-top
	info    map[platform.WindowID]fakeWindow

	events       []platform.Event
	modifierDown bool
	surfaceErr   error
	grabErr      error

	surface   *fakeSurface
	opened    []platform.Rect
	activated []platform.WindowID
	grabs     int
}

func newFakeBackend(titles ...string) *fakeBackend {
	b := &fakeBackend{
		info:         map[platform.WindowID]fakeWindow{},
		modifierDown: true,
		surface:      &fakeSurface{},
	}
	// titles are given most recent first; the stacking list is bottom-to-top.
	for i := len(titles) - 1; i >= 0; i-- {
		id := platform.WindowID(100 + i)
		b.windows = append(b.windows, id)
		b.info[id] = fakeWindow{title: titles[i], managed: true}
	}
	return b
}

func (b *fakeBackend) Root() platform.WindowID { return 1 }

func (b *fakeBackend) ScreenSize() (int, int) { return 1920, 1080 }

func (b *fakeBackend) Children(id platform.WindowID) ([]platform.WindowID, error) {
	if id == 1 {
		return b.windows, nil
	}
	return nil, nil
}

func (b *fakeBackend) Viewable(id platform.WindowID) bool {
	_, ok := b.info[id]
	return ok
}

func (b *fakeBackend) Title(id platform.WindowID) (string, error) {
	w, ok := b.info[id]
	if !ok {
		return "", errors.New("no title")
	}
	return w.title, nil
}

func (b *fakeBackend) HasProperty(id platform.WindowID, name string) bool {
	return name == discovery.ManagedMarker && b.info[id].managed
}

func (b *fakeBackend) IconData(id platform.WindowID) ([]byte, error) {
	w := b.info[id]
	if w.icon == nil {
		return nil, errors.New("no icon")
	}
	return w.icon, nil
}

func (b *fakeBackend) OpenSurface(bounds platform.Rect) (platform.Surface, error) {
	if b.surfaceErr != nil {
		return nil, b.surfaceErr
	}
	b.opened = append(b.opened, bounds)
	b.surface.grabErr = b.grabErr
	return b.surface, nil
}

func (b *fakeBackend) NextEvent() (platform.Event, error) {
	if len(b.events) == 0 {
		return platform.Event{}, errEndOfEvents
	}
	ev := b.events[0]
	b.events = b.events[1:]
	return ev, nil
}

func (b *fakeBackend) ModifierHeld() bool { return b.modifierDown }

func (b *fakeBackend) GrabTrigger() error {
	b.grabs++
	return nil
}

func (b *fakeBackend) Activate(id platform.WindowID) error {
	b.activated = append(b.activated, id)
	return nil
}

// idFor returns the window id the fake assigned to the i-th most recent title.
func idFor(i int) platform.WindowID {
	return platform.WindowID(100 + i)
}

func ev(kind platform.EventKind) platform.Event {
	return platform.Event{Kind: kind}
}

func shifted(kind platform.EventKind) platform.Event {
	return platform.Event{Kind: kind, Reverse: true}
}
