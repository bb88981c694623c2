// Package dismiss closes open popovers on pointer-down outside their anchor regions.
package dismiss

import (
	"sort"
	"sync"
)

// PointerSource глобальный источник событий pointer-down / touch-start
type PointerSource interface {
	Subscribe(handler func(p Point)) (unsubscribe func())
}

type popover struct {
	region  Region
	onClose func()
	open    bool
	seq     uint64
}

// Coordinator реестр поповеров с флагом открытости.
// Каждый открытый поповер проверяется независимо, взаимного исключения нет.
type Coordinator struct {
	mu       sync.Mutex
	popovers map[string]*popover
	seq      uint64

	unsubscribe func()
}

// NewCoordinator создает пустой координатор
func NewCoordinator() *Coordinator {
	return &Coordinator{popovers: make(map[string]*popover)}
}

// Register регистрирует поповер и возвращает функцию снятия регистрации.
// Повторная регистрация с тем же id заменяет область и колбэк, флаг открытости сохраняется.
func (c *Coordinator) Register(id string, region Region, onClose func()) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	if existing, ok := c.popovers[id]; ok {
		existing.region = region
		existing.onClose = onClose
		existing.seq = c.seq
	} else {
		c.popovers[id] = &popover{region: region, onClose: onClose, seq: c.seq}
	}

	seq := c.seq
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		// не снимаем более позднюю регистрацию с тем же id
		if p, ok := c.popovers[id]; ok && p.seq == seq {
			delete(c.popovers, id)
		}
	}
}

// Deregister удаляет поповер
func (c *Coordinator) Deregister(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.popovers, id)
}

// Open помечает поповер открытым
func (c *Coordinator) Open(id string) bool {
	return c.setOpen(id, true)
}

// Close помечает поповер закрытым без вызова колбэка
func (c *Coordinator) Close(id string) bool {
	return c.setOpen(id, false)
}

// Toggle переключает состояние и возвращает новое
func (c *Coordinator) Toggle(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.popovers[id]
	if !ok {
		return false
	}
	p.open = !p.open
	return p.open
}

// IsOpen сообщает, открыт ли поповер
func (c *Coordinator) IsOpen(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.popovers[id]
	return ok && p.open
}

// OpenIDs возвращает отсортированные id открытых поповеров
func (c *Coordinator) OpenIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]string, 0, len(c.popovers))
	for id, p := range c.popovers {
		if p.open {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func (c *Coordinator) setOpen(id string, open bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.popovers[id]
	if !ok {
		return false
	}
	p.open = open
	return true
}

// Mount подписывается на источник событий. Повторный Mount без Unmount ничего не делает.
func (c *Coordinator) Mount(source PointerSource) {
	c.mu.Lock()
	if c.unsubscribe != nil || source == nil {
		c.mu.Unlock()
		return
	}
	// резервируем слот до подписки, чтобы параллельный Mount не подписался второй раз
	c.unsubscribe = func() {}
	c.mu.Unlock()

	unsubscribe := source.Subscribe(func(p Point) { c.PointerDown(p) })

	c.mu.Lock()
	c.unsubscribe = unsubscribe
	c.mu.Unlock()
}

// Unmount отписывается от источника событий
func (c *Coordinator) Unmount() {
	c.mu.Lock()
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Mounted сообщает, есть ли активная подписка
func (c *Coordinator) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unsubscribe != nil
}

// PointerDown закрывает каждый открытый поповер, чья область не содержит точку.
// Возвращает id закрытых поповеров.
func (c *Coordinator) PointerDown(p Point) []string {
	c.mu.Lock()
	var (
		closed    []string
		callbacks []func()
	)
	for id, pop := range c.popovers {
		if !pop.open {
			continue
		}
		if pop.region != nil && pop.region.Contains(p) {
			continue
		}
		pop.open = false
		closed = append(closed, id)
		if pop.onClose != nil {
			callbacks = append(callbacks, pop.onClose)
		}
	}
	c.mu.Unlock()

	// колбэки вне блокировки: хост может снова обращаться к координатору
	for _, cb := range callbacks {
		cb()
	}

	sort.Strings(closed)
	return closed
}
