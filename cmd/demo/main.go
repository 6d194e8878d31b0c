package main

import (
	"fmt"

	"github.com/ClickerMonkey/enumflags"
)

type Permission uint8

var (
	Read    = enumflags.Bit[Permission](0)
	Write   = enumflags.Bit[Permission](1)
	Execute = enumflags.Bit[Permission](2)
)

func main() {
	perms := enumflags.New(Read, Write)
	fmt.Printf("permissions: %03b\n", perms.Bits())
	fmt.Printf("can write:   %v\n", perms.Has(Write))

	perms.Remove(enumflags.New(Write)).Add(enumflags.New(Execute))
	fmt.Printf("after chmod: %03b\n", perms.Bits())

	readOnly := enumflags.MatchAnd(
		enumflags.MatchAll(enumflags.New(Read)),
		enumflags.MatchNone(enumflags.New(Write)),
	)
	fmt.Printf("read-only:   %v\n", perms.Is(readOnly))

	elevated := perms.Union(enumflags.New(Write))
	fmt.Printf("elevated:    %03b (original %03b unchanged)\n", elevated.Bits(), perms.Bits())
}
