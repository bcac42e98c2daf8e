// Command otcli is a small command-line front end over the operation
// algebra in package ot: apply an operation to a document, compose or
// rebase two operations, and compare two values with cmp.
package main

import (
	"fmt"
	"log"
	"os"

	C "github.com/urfave/cli/v2"

	"github.com/hiraeth-ot/otjson/ot"
	V "github.com/hiraeth-ot/otjson/value"
)

const (
	keyDoc           = "doc"
	keyOp            = "op"
	keyA            = "a"
	keyB            = "b"
	keyConflictless = "conflictless"
)

var (
	flagDoc = &C.StringFlag{
		Name:  keyDoc,
		Usage: "path to a JSON document (or '-' for stdin)",
	}
	flagOp = &C.StringFlag{
		Name:  keyOp,
		Usage: "path to a JSON-encoded operation",
	}
	flagA = &C.StringFlag{
		Name:  keyA,
		Usage: "path to the first JSON-encoded operation",
	}
	flagB = &C.StringFlag{
		Name:  keyB,
		Usage: "path to the second JSON-encoded operation",
	}
	flagConflictless = &C.BoolFlag{
		Name:  keyConflictless,
		Usage: "enable conflictless tie-breaking",
	}
)

func main() {
	app := &C.App{
		Name:  "otcli",
		Usage: "apply, compose and rebase JSON operational-transformation operations",
		Commands: []*C.Command{
			applyCommand(),
			composeCommand(),
			rebaseCommand(),
			cmpCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func readFileOrStdin(path string) ([]byte, error) {
	if path == "-" || path == "" {
		return readAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func readAll(f *os.File) ([]byte, error) {
	buf := make([]byte, 0, 4096)
	chunk := make([]byte, 4096)
	for {
		n, err := f.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if err != nil {
			break
		}
	}
	return buf, nil
}

func loadDoc(path string) (V.Value, error) {
	data, err := readFileOrStdin(path)
	if err != nil {
		return nil, err
	}
	return V.FromJSON(data)
}

func loadOp(path string) (ot.Operation, error) {
	data, err := readFileOrStdin(path)
	if err != nil {
		return nil, err
	}
	return ot.FromJSON(data)
}

func applyCommand() *C.Command {
	return &C.Command{
		Name:  "apply",
		Usage: "apply an operation to a document and print the result",
		Flags: []C.Flag{flagDoc, flagOp},
		Action: func(c *C.Context) error {
			doc, err := loadDoc(c.String(keyDoc))
			if err != nil {
				return err
			}
			op, err := loadOp(c.String(keyOp))
			if err != nil {
				return err
			}
			result, err := op.Apply(doc)
			if err != nil {
				return err
			}
			return printValue(result)
		},
	}
}

func composeCommand() *C.Command {
	return &C.Command{
		Name:  "compose",
		Usage: "compose two operations (a then b) and print the result",
		Flags: []C.Flag{flagA, flagB},
		Action: func(c *C.Context) error {
			a, err := loadOp(c.String(keyA))
			if err != nil {
				return err
			}
			b, err := loadOp(c.String(keyB))
			if err != nil {
				return err
			}
			combined, ok := a.Compose(b)
			if !ok {
				combined = ot.ComposeList([]ot.Operation{a, b})
			}
			return printOp(combined)
		},
	}
}

func rebaseCommand() *C.Command {
	return &C.Command{
		Name:  "rebase",
		Usage: "rebase a against b and print a/b",
		Flags: []C.Flag{flagA, flagB, flagDoc, flagConflictless},
		Action: func(c *C.Context) error {
			a, err := loadOp(c.String(keyA))
			if err != nil {
				return err
			}
			b, err := loadOp(c.String(keyB))
			if err != nil {
				return err
			}
			cl := ot.Off
			if c.Bool(keyConflictless) {
				cl = ot.On()
				if docPath := c.String(keyDoc); docPath != "" {
					doc, err := loadDoc(docPath)
					if err != nil {
						return err
					}
					cl = ot.WithDocument(doc)
				}
			}
			rebased, err := a.Rebase(b, cl)
			if err != nil {
				return err
			}
			return printOp(rebased)
		},
	}
}

func cmpCommand() *C.Command {
	return &C.Command{
		Name:  "cmp",
		Usage: "compare two JSON values and print -1, 0 or 1",
		Flags: []C.Flag{flagA, flagB},
		Action: func(c *C.Context) error {
			a, err := loadDoc(c.String(keyA))
			if err != nil {
				return err
			}
			b, err := loadDoc(c.String(keyB))
			if err != nil {
				return err
			}
			fmt.Println(ot.Cmp(a, b))
			return nil
		},
	}
}

func printValue(v V.Value) error {
	data, err := V.ToJSON(v)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printOp(op ot.Operation) error {
	data, err := ot.ToJSON(op)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
