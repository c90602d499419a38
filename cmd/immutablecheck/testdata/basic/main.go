package main

import (
	"bytes"
	"fmt"
)

//immutablecheck:immutable
type Point struct {
	X, Y int
}

//immutablecheck:immutable
type Config struct {
	Name  string
	Items []string
}

//immutablecheck:immutable
type Report struct {
	buf bytes.Buffer
}

func main() {
	fmt.Println(Point{}, Config{}, Report{})
}
