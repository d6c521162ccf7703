// ace64run loads a raw binary at a chosen address, resets a CPU (or starts
// it at an explicit PC), and single-steps it for a fixed number of
// instructions, printing the disassembly and cycle count of each one.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"

	"github.com/davecgh/go-spew/spew"

	"github.com/oneColdCanuck/ace64cpu/cpu"
	"github.com/oneColdCanuck/ace64cpu/disassemble"
	"github.com/oneColdCanuck/ace64cpu/memory"
)

var (
	seedAddr = flag.Int("seed-addr", 0x0800, "Address to load -seed-hex at.")
	seedHex  = flag.String("seed-hex", "", "Path to a raw binary file to load into memory before running.")
	pc       = flag.Int("pc", -1, "Starting PC. Defaults to the reset vector address ($FFFC) that Reset puts in PC.")
	n        = flag.Int("n", 1, "Number of instructions to execute.")
	verbose  = flag.Bool("v", false, "Dump full CPU state after each instruction.")
)

func main() {
	flag.Parse()

	mem := memory.New()
	c, err := cpu.New(cpu.CPU_NMOS, mem)
	if err != nil {
		log.Fatalf("cpu.New: %v", err)
	}
	c.Reset()

	if *seedHex != "" {
		b, err := ioutil.ReadFile(*seedHex)
		if err != nil {
			log.Fatalf("reading %q: %v", *seedHex, err)
		}
		for i, v := range b {
			mem.Write(uint16(*seedAddr+i), v)
		}
	}
	if *pc >= 0 {
		c.PC = uint16(*pc)
	}

	for i := 0; i < *n; i++ {
		text, _ := disassemble.Step(c.PC, mem)
		cycles, err := c.Execute()
		if err != nil {
			log.Fatalf("instruction %d at %.4X: %v", i, c.PC, err)
		}
		fmt.Printf("%-32s ; %d cycles\n", text, cycles)
		if *verbose {
			spew.Dump(c)
		}
	}
}
