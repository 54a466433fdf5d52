package cache

// Node of the doubly linked list used to track key recency.
type lruNode struct {
	key  TileKey
	prev *lruNode
	next *lruNode
}

// Doubly linked list with the most recently used key at the
// head and the least recently used one at the tail.
type lruList struct {
	head *lruNode
	tail *lruNode
	len  int
}

func (self *lruList) Len() int { return self.len }

// Adds a new key at the front and returns its node.
func (self *lruList) PushFront(key TileKey) *lruNode {
	node := &lruNode{ key: key }
	self.linkFront(node)
	return node
}

// Marks the node as the most recently used.
func (self *lruList) MoveToFront(node *lruNode) {
	if node == self.head { return }
	self.unlink(node)
	self.linkFront(node)
}

// Removes the least recently used node and returns its key.
func (self *lruList) RemoveOldest() (TileKey, bool) {
	if self.tail == nil { return TileKey{}, false }
	node := self.tail
	self.unlink(node)
	return node.key, true
}

func (self *lruList) Clear() {
	self.head, self.tail, self.len = nil, nil, 0
}

func (self *lruList) linkFront(node *lruNode) {
	node.prev = nil
	node.next = self.head
	if self.head != nil { self.head.prev = node }
	self.head = node
	if self.tail == nil { self.tail = node }
	self.len += 1
}

func (self *lruList) unlink(node *lruNode) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		self.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		self.tail = node.prev
	}
	node.prev, node.next = nil, nil
	self.len -= 1
}
