// main.go - gpuscript runs a Lua script that drives the psxsw rasterizer
// through a small set of draw_* globals, then writes the resulting VRAM
// surface out as a PNG. It exists so test scenes can be described
// declaratively instead of hand-written in Go, the way the teacher's own
// scripting layer drives its emulated machine.
//
// Usage: go run ./cmd/gpuscript -script scene.lua -out scene.png
//
// Copyright (c) 2024-2026 Zayn Otley
// https://github.com/intuitionamiga/psxsw
//
// License: GPLv3 or later

package main

import (
	"flag"
	"log"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/intuitionamiga/psxsw"
)

func main() {
	scriptPath := flag.String("script", "", "Lua scene script")
	outPath := flag.String("out", "scene.png", "output PNG path")
	flag.Parse()

	if *scriptPath == "" {
		log.Fatal("-script is required")
	}

	v := psxsw.NewVRAM()
	area := psxsw.DrawingArea{Left: 0, Top: 0, Right: psxsw.VRAMWidth - 1, Bottom: psxsw.VRAMHeight - 1}

	L := lua.NewState()
	defer L.Close()

	registerDrawAPI(L, v, area)

	if err := L.DoFile(*scriptPath); err != nil {
		log.Fatal(&psxsw.RasterError{Operation: "script execution", Details: *scriptPath, Err: err})
	}

	if err := dumpPNG(v, *outPath); err != nil {
		log.Fatal(&psxsw.RasterError{Operation: "gpuscript output", Details: *outPath, Err: err})
	}

	log.Printf("wrote %s", *outPath)
}

// registerDrawAPI installs draw_rectangle, draw_triangle, and draw_line as
// Lua globals, each taking plain numbers rather than table-shaped command
// structs so scene scripts stay short.
func registerDrawAPI(L *lua.LState, v *psxsw.VRAM, area psxsw.DrawingArea) {
	L.SetGlobal("draw_rectangle", L.NewFunction(func(L *lua.LState) int {
		cmd := &psxsw.Sprite{
			X: int32(L.CheckNumber(1)), Y: int32(L.CheckNumber(2)),
			Width: int32(L.CheckNumber(3)), Height: int32(L.CheckNumber(4)),
			Color: psxsw.RGB8{
				R: uint8(L.CheckNumber(5)), G: uint8(L.CheckNumber(6)), B: uint8(L.CheckNumber(7)),
			},
		}
		psxsw.DrawRectangle(cmd, v, area)
		return 0
	}))

	L.SetGlobal("draw_triangle", L.NewFunction(func(L *lua.LState) int {
		vx := func(base int) psxsw.Vertex {
			return psxsw.Vertex{
				X: int32(L.CheckNumber(base)), Y: int32(L.CheckNumber(base + 1)),
				R: uint8(L.CheckNumber(base + 2)), G: uint8(L.CheckNumber(base + 3)), B: uint8(L.CheckNumber(base + 4)),
			}
		}
		cmd := &psxsw.Polygon{
			Vertices: []psxsw.Vertex{vx(1), vx(6), vx(11)},
			Flags:    psxsw.PolygonFlags{Shading: true},
		}
		psxsw.DrawPolygon(cmd, v, area)
		return 0
	}))

	L.SetGlobal("draw_line", L.NewFunction(func(L *lua.LState) int {
		p0 := &psxsw.LineVertex{
			X: int32(L.CheckNumber(1)), Y: int32(L.CheckNumber(2)),
			R: uint8(L.CheckNumber(5)), G: uint8(L.CheckNumber(6)), B: uint8(L.CheckNumber(7)),
		}
		p1 := &psxsw.LineVertex{
			X: int32(L.CheckNumber(3)), Y: int32(L.CheckNumber(4)),
			R: uint8(L.CheckNumber(5)), G: uint8(L.CheckNumber(6)), B: uint8(L.CheckNumber(7)),
		}
		psxsw.DrawLine(&psxsw.Line{}, p0, p1, v, area)
		return 0
	}))
}

func dumpPNG(v *psxsw.VRAM, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return psxsw.EncodePNG(v, f)
}
