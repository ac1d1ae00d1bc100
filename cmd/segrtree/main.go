// github.com/jagill/segment-rtree - a static spatial index for planar polylines
// Copyright (C) 2026  The segment-rtree authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command segrtree exercises the segrtree library from the command
// line: it reads a path as "x,y;x,y;..." from stdin and validates,
// clips, or tests point containment against it. It does not parse
// WKT; that format is out of scope for the library itself.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jagill/segment-rtree"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "segrtree",
		Usage: "inspect planar paths with a packed segment R-tree",
		Commands: []*cli.Command{
			validateCommand(),
			clipCommand(),
			containsCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func validateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "read a path from stdin and report whether it is simple",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			coords, err := readCoords(os.Stdin)
			if err != nil {
				return err
			}
			if _, err := segrtree.ValidatePath(coords); err != nil {
				return err
			}
			fmt.Println("ok")
			return nil
		},
	}
}

func clipCommand() *cli.Command {
	return &cli.Command{
		Name:      "clip",
		Usage:     "clip a path from stdin against a rectangle",
		ArgsUsage: "xmin ymin xmax ymax",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 4 {
				return fmt.Errorf("clip requires xmin ymin xmax ymax")
			}
			rect, err := parseRect(cmd.Args().Slice())
			if err != nil {
				return err
			}
			coords, err := readCoords(os.Stdin)
			if err != nil {
				return err
			}
			path, err := segrtree.ValidatePath(coords)
			if err != nil {
				return err
			}
			for _, piece := range segrtree.ClipPath(rect, path.Coords(), path.Tree()) {
				fmt.Println(formatCoords(piece))
			}
			return nil
		},
	}
}

func containsCommand() *cli.Command {
	return &cli.Command{
		Name:      "contains",
		Usage:     "test whether a point lies inside a ring from stdin",
		ArgsUsage: "x y",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("contains requires x y")
			}
			point, err := parsePoint(cmd.Args().Get(0), cmd.Args().Get(1))
			if err != nil {
				return err
			}
			coords, err := readCoords(os.Stdin)
			if err != nil {
				return err
			}
			ring, err := segrtree.ValidateRing(coords)
			if err != nil {
				return err
			}
			containment, err := ring.Classify(point)
			if err != nil {
				return err
			}
			fmt.Println(containment)
			return nil
		},
	}
}

func readCoords(r *os.File) ([]segrtree.Coordinate, error) {
	var data []byte
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		data = append(data, buf[:n]...)
		if err != nil {
			if err != io.EOF {
				return nil, err
			}
			break
		}
	}
	var coords []segrtree.Coordinate
	for _, field := range strings.FieldsFunc(string(data), func(r rune) bool {
		return r == ';' || r == '\n' || r == '\r'
	}) {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		parts := strings.Split(field, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid coordinate %q", field)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", field, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", field, err)
		}
		coords = append(coords, segrtree.Coordinate{X: x, Y: y})
	}
	return coords, nil
}

func formatCoords(coords []segrtree.Coordinate) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = fmt.Sprintf("%g,%g", c.X, c.Y)
	}
	return strings.Join(parts, ";")
}

func parseRect(args []string) (segrtree.Rect, error) {
	values := make([]float64, 4)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return segrtree.Rect{}, fmt.Errorf("invalid number %q: %w", arg, err)
		}
		values[i] = v
	}
	return segrtree.NewRect(
		segrtree.Coordinate{X: values[0], Y: values[1]},
		segrtree.Coordinate{X: values[2], Y: values[3]},
	), nil
}

func parsePoint(xs, ys string) (segrtree.Coordinate, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return segrtree.Coordinate{}, fmt.Errorf("invalid number %q: %w", xs, err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return segrtree.Coordinate{}, fmt.Errorf("invalid number %q: %w", ys, err)
	}
	return segrtree.Coordinate{X: x, Y: y}, nil
}
