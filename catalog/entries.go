package catalog

import (
	"patterns-lab/lessons/container"
	"patterns-lab/lessons/coupling"
	"patterns-lab/lessons/injection"
	"patterns-lab/patterns/abstractfactory"
	"patterns-lab/patterns/bridge"
	"patterns-lab/patterns/chain"
	"patterns-lab/patterns/composite"
	"patterns-lab/patterns/factorymethod"
	"patterns-lab/patterns/iterator"
	"patterns-lab/patterns/mediator"
	"patterns-lab/patterns/memento"
	"patterns-lab/patterns/proxy"
	"patterns-lab/patterns/singleton"
	"patterns-lab/patterns/strategy"
	"patterns-lab/patterns/templatemethod"
	"patterns-lab/patterns/visitor"
)

// The registry is explicit rather than discovered: every demo is one line
// here, and the compiler keeps the list honest when a package moves.
var entries = []Entry{
	{
		Name:   "iterator",
		Family: Behavioral,
		Blurb:  "walk a message log forward, backward, and with range-over-func",
		Run:    iterator.Demo,
	},
	{
		Name:   "chain",
		Family: Behavioral,
		Blurb:  "moderation pipeline; each stage rejects, rewrites, or passes along",
		Run:    chain.Demo,
	},
	{
		Name:   "mediator",
		Family: Behavioral,
		Blurb:  "a chat room routes every message so users never hold each other",
		Run:    mediator.Demo,
	},
	{
		Name:   "memento",
		Family: Behavioral,
		Blurb:  "editor snapshots and undo without exposing editor internals",
		Run:    memento.Demo,
	},
	{
		Name:   "strategy",
		Family: Behavioral,
		Blurb:  "swap censoring policies at runtime behind one interface",
		Run:    strategy.Demo,
	},
	{
		Name:   "templatemethod",
		Family: Behavioral,
		Blurb:  "fixed collect-summarize-render skeleton, pluggable steps",
		Run:    templatemethod.Demo,
	},
	{
		Name:   "visitor",
		Family: Behavioral,
		Blurb:  "new operations over attachment types without editing them",
		Run:    visitor.Demo,
	},
	{
		Name:   "abstractfactory",
		Family: Creational,
		Blurb:  "whole widget families at once; themes never mix",
		Run:    abstractfactory.Demo,
	},
	{
		Name:   "factorymethod",
		Family: Creational,
		Blurb:  "one creation function hides every concrete event sink",
		Run:    factorymethod.Demo,
	},
	{
		Name:   "singleton",
		Family: Creational,
		Blurb:  "four lazy-init disciplines, from data race to sync.Once",
		Run:    singleton.Demo,
	},
	{
		Name:   "bridge",
		Family: Structural,
		Blurb:  "notifications and transports vary independently, n+m not n*m",
		Run:    bridge.Demo,
	},
	{
		Name:   "composite",
		Family: Structural,
		Blurb:  "files and folders answer the same Size question",
		Run:    composite.Demo,
	},
	{
		Name:   "proxy",
		Family: Structural,
		Blurb:  "cache and auth gate stacked in front of a bluge search index",
		Run:    proxy.Demo,
	},
	{
		Name:   "coupling",
		Family: Lesson,
		Blurb:  "lesson 1: a service that news up its own world, and the cost",
		Run:    coupling.Demo,
	},
	{
		Name:   "injection",
		Family: Lesson,
		Blurb:  "lesson 2: constructor injection and the composition root",
		Run:    injection.Demo,
	},
	{
		Name:   "container",
		Family: Lesson,
		Blurb:  "lesson 3: a toy IoC container - create by name, cache forever",
		Run:    container.Demo,
	},
}
