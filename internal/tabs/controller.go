// Package tabs provides the active-state controller shared between a tab bar
// and its tabs.
package tabs

import (
	"strings"

	"github.com/playpen/playpen/internal/logging"
)

// Direction is the direction of keyboard navigation.
type Direction int

const (
	Previous Direction = iota
	Next
)

func (d Direction) String() string {
	if d == Previous {
		return "previous"
	}
	return "next"
}

// Change is emitted whenever the active item changes. Item is nil when there
// is no longer an active item.
type Change struct {
	Item *Item
}

// Controller owns the active item for a collection of tabs. It is the single
// writer of every item's active flag; item-level requests are routed back to
// it and re-entrant requests are ignored.
//
// Controller is not safe for concurrent use: it is driven from a single event
// loop.
type Controller struct {
	items  []*Item
	active *Item

	notify func(Change)
	logger logging.Interface
}

type Option func(*Controller)

// WithNotify registers a function to be called upon every change of active
// item.
func WithNotify(fn func(Change)) Option {
	return func(c *Controller) {
		c.notify = fn
	}
}

func WithLogger(logger logging.Interface) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

func NewController(opts ...Option) *Controller {
	c := &Controller{
		notify: func(Change) {},
		logger: logging.Discard,
	}
	for _, fn := range opts {
		fn(c)
	}
	return c
}

// Items returns the collection in display order.
func (c *Controller) Items() []*Item { return c.items }

// Active returns the active item, or nil if there is none.
func (c *Controller) Active() *Item { return c.active }

// ActiveIndex returns the index of the active item, or -1 if there is none.
func (c *Controller) ActiveIndex() int {
	if c.active == nil {
		return -1
	}
	return c.active.index
}

// Lookup returns the item with the given key.
func (c *Controller) Lookup(key string) (*Item, bool) {
	for _, item := range c.items {
		if item.Key == key {
			return item, true
		}
	}
	return nil, false
}

// SetActive makes item the active item. A nil item leaves no item active.
// Setting the already active item is a no-op. The previous item is
// deactivated before the new item is activated.
func (c *Controller) SetActive(item *Item) {
	if item == c.active {
		return
	}
	prev := c.active
	c.active = item
	if prev != nil {
		prev.setFlag(false)
	}
	if item != nil {
		item.setFlag(true)
	}

	c.logger.Debug("set active tab", "previous", keyOf(prev), "active", keyOf(item))
	c.notify(Change{Item: item})
}

// itemActivated is called by an item whose flag has been set. When the
// controller is itself responsible the call is a no-op.
func (c *Controller) itemActivated(item *Item) {
	c.SetActive(item)
}

// SetItems replaces the collection. Items are reindexed by position. The first
// item claiming to be active, either via its flag or its initial marker, wins
// and every later claimant is deactivated. If no item claims to be active
// then there is no active item.
func (c *Controller) SetItems(items []*Item) {
	var winner *Item
	for i, item := range items {
		item.index = i
		item.ctrl = c
		claims := item.active || item.Initial
		// The initial marker only counts the first time the item is seen.
		item.Initial = false
		if !claims {
			continue
		}
		if winner == nil {
			winner = item
			continue
		}
		item.active = false
	}
	previous := c.items
	c.items = items
	for _, item := range previous {
		if !c.contains(item) {
			item.ctrl = nil
		}
	}
	// An active item that has left the collection is dropped without a swap.
	if c.active != nil && !c.contains(c.active) {
		c.active.active = false
		c.active = nil
		if winner == nil {
			c.notify(Change{})
			return
		}
	}
	if winner != nil && winner != c.active {
		// The winner may already carry the flag; clear it so SetActive
		// performs the full swap.
		winner.active = false
	}
	c.SetActive(winner)
}

func keyOf(item *Item) string {
	if item == nil {
		return ""
	}
	return item.Key
}

func (c *Controller) contains(item *Item) bool {
	for _, i := range c.items {
		if i == item {
			return true
		}
	}
	return false
}

// Navigate moves the active item one step in the given direction, without
// wrapping. It returns the newly active item, or nil if nothing changed. When
// there is no active item, the first item is activated.
func (c *Controller) Navigate(dir Direction) *Item {
	if len(c.items) == 0 {
		return nil
	}
	if c.active == nil {
		c.SetActive(c.items[0])
		return c.items[0]
	}
	from := c.active.index
	to := from
	switch dir {
	case Previous:
		to = max(0, from-1)
	case Next:
		to = min(len(c.items)-1, from+1)
	}
	if to == from {
		return nil
	}
	c.SetActive(c.items[to])
	return c.items[to]
}

// elementPrefix namespaces the dispatch path elements that identify an item,
// keeping them apart from any other element whatever an item's key.
const elementPrefix = "tab:"

// Element returns the dispatch path element identifying the item with the
// given key.
func Element(key string) string {
	return elementPrefix + key
}

// Resolve walks a dispatch path, innermost element first, and returns the
// item identified by the first element made with Element.
func (c *Controller) Resolve(path []string) (*Item, bool) {
	for _, el := range path {
		key, ok := strings.CutPrefix(el, elementPrefix)
		if !ok {
			continue
		}
		if item, ok := c.Lookup(key); ok {
			return item, true
		}
	}
	return nil, false
}

// Activate handles an activation gesture originating from the given dispatch
// path. It returns the item that was activated, or nil if the origin could not
// be resolved to an item or the item is already active.
func (c *Controller) Activate(path []string) *Item {
	item, ok := c.Resolve(path)
	if !ok || item == c.active {
		return nil
	}
	c.SetActive(item)
	return item
}
