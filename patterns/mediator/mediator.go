// Package mediator centralizes who-talks-to-whom in a chat room. Users hold
// a reference to the room and nothing else; routing, membership and delivery
// live in one place instead of n² peer references.
package mediator

import (
	"errors"
	"fmt"
)

var (
	ErrNotAMember    = errors.New("sender is not in the room")
	ErrUnknownTarget = errors.New("target is not in the room")
	ErrHandleTaken   = errors.New("handle already in use")
	ErrSelfDelivery  = errors.New("whispering to yourself")
	ErrAlreadyInRoom = errors.New("user already joined a room")
	ErrEmptyMessage  = errors.New("empty message")
)

// Mediator is what a User sees of the room.
type Mediator interface {
	Broadcast(from *User, text string) error
	Whisper(from *User, to, text string) error
}

// ChatRoom is the concrete mediator. Delivery order for broadcasts follows
// join order, so demo output stays stable.
type ChatRoom struct {
	name    string
	members map[string]*User
	joined  []string
}

func NewChatRoom(name string) *ChatRoom {
	return &ChatRoom{
		name:    name,
		members: make(map[string]*User),
	}
}

// Join registers a user and announces the arrival to everyone already there.
func (r *ChatRoom) Join(u *User) error {
	if u.room != nil {
		return ErrAlreadyInRoom
	}
	if _, taken := r.members[u.Handle]; taken {
		return ErrHandleTaken
	}

	r.notifyAll(fmt.Sprintf("* %s joined %s", u.Handle, r.name))
	r.members[u.Handle] = u
	r.joined = append(r.joined, u.Handle)
	u.room = r
	return nil
}

// Leave removes a user; the slot is cleaned up entirely so a rejoin starts
// fresh.
func (r *ChatRoom) Leave(u *User) {
	if _, ok := r.members[u.Handle]; !ok {
		return
	}
	delete(r.members, u.Handle)
	for i, h := range r.joined {
		if h == u.Handle {
			r.joined = append(r.joined[:i], r.joined[i+1:]...)
			break
		}
	}
	u.room = nil
	r.notifyAll(fmt.Sprintf("* %s left %s", u.Handle, r.name))
}

// Broadcast delivers to every member except the sender.
func (r *ChatRoom) Broadcast(from *User, text string) error {
	if text == "" {
		return ErrEmptyMessage
	}
	if _, ok := r.members[from.Handle]; !ok {
		return ErrNotAMember
	}
	for _, handle := range r.joined {
		if handle == from.Handle {
			continue
		}
		r.members[handle].receive(fmt.Sprintf("%s: %s", from.Handle, text))
	}
	return nil
}

// Whisper delivers to a single member.
func (r *ChatRoom) Whisper(from *User, to, text string) error {
	if _, ok := r.members[from.Handle]; !ok {
		return ErrNotAMember
	}
	if to == from.Handle {
		return ErrSelfDelivery
	}
	target, ok := r.members[to]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTarget, to)
	}
	target.receive(fmt.Sprintf("%s (whisper): %s", from.Handle, text))
	return nil
}

func (r *ChatRoom) Size() int {
	return len(r.members)
}

func (r *ChatRoom) notifyAll(line string) {
	for _, handle := range r.joined {
		r.members[handle].receive(line)
	}
}

// User is a colleague: it sends through the mediator and records what the
// mediator delivers. Users never hold references to each other.
type User struct {
	Handle string
	Inbox  []string
	room   Mediator
}

func NewUser(handle string) *User {
	return &User{Handle: handle}
}

// Say broadcasts through the room the user joined.
func (u *User) Say(text string) error {
	if u.room == nil {
		return ErrNotAMember
	}
	return u.room.Broadcast(u, text)
}

// SayTo whispers through the room the user joined.
func (u *User) SayTo(to, text string) error {
	if u.room == nil {
		return ErrNotAMember
	}
	return u.room.Whisper(u, to, text)
}

func (u *User) receive(line string) {
	u.Inbox = append(u.Inbox, line)
}
