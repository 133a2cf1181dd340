package tabs

// Item is a single tab in a controller's collection.
type Item struct {
	// Key identifies the item and is stable across collection changes.
	Key string
	// Label is rendered in the tab header. Defaults to the key.
	Label string
	// Initial marks the item as active when it first joins a collection, and
	// is consulted by the first-active-wins rule. It is the equivalent of a
	// statically declared active attribute.
	Initial bool

	index  int
	active bool
	ctrl   *Controller
}

// NewItem constructs an item with the given key.
func NewItem(key string) *Item {
	return &Item{Key: key, Label: key}
}

// Index is the item's position within its collection.
func (i *Item) Index() int { return i.index }

// Active reports whether the item is the active item.
func (i *Item) Active() bool { return i.active }

// TabIndex is the item's keyboard reachability: only the active item can take
// focus.
func (i *Item) TabIndex() int {
	if i.active {
		return 0
	}
	return -1
}

func (i *Item) String() string {
	if i.Label != "" {
		return i.Label
	}
	return i.Key
}

// SetActive sets the item's active flag. When the item belongs to a
// controller the request is routed through it, so that the controller remains
// the sole writer of active state.
func (i *Item) SetActive(active bool) {
	if i.ctrl == nil {
		i.active = active
		return
	}
	switch {
	case active:
		i.ctrl.SetActive(i)
	case i.ctrl.active == i:
		i.ctrl.SetActive(nil)
	}
}

// setFlag changes the flag and reports the change back to the controller.
func (i *Item) setFlag(active bool) {
	if i.active == active {
		return
	}
	i.active = active
	if active && i.ctrl != nil {
		i.ctrl.itemActivated(i)
	}
}
