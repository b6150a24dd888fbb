package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"fortio.org/log"
	"github.com/XJIeI5/rpncalc/internal/brain"
	"github.com/XJIeI5/rpncalc/internal/keypad"
)

func main() {
	programPtr := flag.String("program", "", "JSON token file to load at start and save at exit")
	quietPtr := flag.Bool("quiet", false, "do not print the prompt")
	flag.Parse()

	session := keypad.NewSession(brain.New(), os.Stdout)
	if *programPtr != "" {
		if err := session.LoadProgram(*programPtr); err != nil {
			log.Fatalf("load program: %v", err)
		}
		fmt.Printf("%s\t%s\n", session.Display(), session.History())
	}

	sc := bufio.NewScanner(os.Stdin)
	for {
		if !*quietPtr {
			fmt.Print("> ")
		}
		if !sc.Scan() {
			break
		}
		session.Enter(sc.Text())
	}
	if err := sc.Err(); err != nil {
		log.Errf("read input: %v", err)
	}

	if *programPtr != "" {
		if err := session.SaveProgram(*programPtr); err != nil {
			log.Fatalf("save program: %v", err)
		}
	}
}
