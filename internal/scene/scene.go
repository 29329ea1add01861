// Package scene loads pairs of shapes to resolve from YAML files.
//
// A scene names an axis strategy and two shapes:
//
//	name: ball in the corner
//	strategy: cartesian-plus-diagonal
//	a: {rect: {center: [170, 170], size: [90, 90]}}
//	b: {circle: {center: [230, 100], radius: 36}}
//
// Shape kinds are rect (center, size), circle (center, radius), triangle
// (three points) and polygon (three or more points). Points are [x, y].
package scene

import (
	"io"
	"os"

	"github.com/gogpu/collide"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrShapeKind is returned when a shape entry does not name exactly one kind.
var ErrShapeKind = errors.New("scene: shape must have exactly one of rect, circle, triangle, polygon")

// Point is an [x, y] pair.
type Point collide.Vector

// UnmarshalYAML decodes a two-element sequence.
func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	var xy []float64
	if err := node.Decode(&xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return errors.Errorf("scene: line %d: point needs 2 coordinates, got %d", node.Line, len(xy))
	}
	*p = Point{X: xy[0], Y: xy[1]}
	return nil
}

// RectConfig describes an axis-aligned rectangle by center and full size.
type RectConfig struct {
	Center Point `yaml:"center"`
	Size   Point `yaml:"size"`
}

// CircleConfig describes a circle.
type CircleConfig struct {
	Center Point   `yaml:"center"`
	Radius float64 `yaml:"radius"`
}

// PointsConfig describes a triangle or polygon by its vertices.
type PointsConfig struct {
	Points []Point `yaml:"points"`
}

// ShapeConfig holds exactly one shape kind.
type ShapeConfig struct {
	Rect     *RectConfig   `yaml:"rect,omitempty"`
	Circle   *CircleConfig `yaml:"circle,omitempty"`
	Triangle *PointsConfig `yaml:"triangle,omitempty"`
	Polygon  *PointsConfig `yaml:"polygon,omitempty"`
}

// Config is the on-disk form of a scene.
type Config struct {
	Name     string      `yaml:"name,omitempty"`
	Strategy string      `yaml:"strategy,omitempty"`
	A        ShapeConfig `yaml:"a"`
	B        ShapeConfig `yaml:"b"`
}

// Scene is a validated pair of shapes and the axis set to resolve them with.
type Scene struct {
	Name     string
	Strategy collide.AxisSet
	A, B     collide.Shape
}

// Decode reads one scene from r. Unknown keys are rejected.
func Decode(r io.Reader) (Scene, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Scene{}, errors.New("scene: empty document")
		}
		return Scene{}, errors.Wrap(err, "scene")
	}
	return c.Build()
}

// Load reads the scene file at path. Without a name in the file, the
// scene is named after the path.
func Load(path string) (Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scene{}, err
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return Scene{}, errors.Wrap(err, path)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Build validates the configuration and constructs its shapes.
// An empty strategy selects collide.Cartesian.
func (c Config) Build() (Scene, error) {
	s := Scene{Name: c.Name, Strategy: collide.Cartesian}
	if c.Strategy != "" {
		set, err := collide.ParseAxisSet(c.Strategy)
		if err != nil {
			return Scene{}, err
		}
		s.Strategy = set
	}

	var err error
	if s.A, err = c.A.Shape(); err != nil {
		return Scene{}, errors.Wrap(err, "shape a")
	}
	if s.B, err = c.B.Shape(); err != nil {
		return Scene{}, errors.Wrap(err, "shape b")
	}
	return s, nil
}

// Shape constructs the configured shape.
func (c ShapeConfig) Shape() (collide.Shape, error) {
	var (
		shape collide.Shape
		err   error
		kinds int
	)
	if c.Rect != nil {
		kinds++
		shape, err = collide.RectFromSize(collide.Vector(c.Rect.Center), collide.Vector(c.Rect.Size))
	}
	if c.Circle != nil {
		kinds++
		shape, err = collide.NewCircle(collide.Vector(c.Circle.Center), c.Circle.Radius)
	}
	if c.Triangle != nil {
		kinds++
		shape, err = c.Triangle.triangle()
	}
	if c.Polygon != nil {
		kinds++
		shape, err = collide.NewPolygon(c.Polygon.vertices()...)
	}
	if kinds != 1 {
		return nil, ErrShapeKind
	}
	if err != nil {
		return nil, err
	}
	return shape, nil
}

func (c PointsConfig) vertices() []collide.Vector {
	out := make([]collide.Vector, len(c.Points))
	for i, p := range c.Points {
		out[i] = collide.Vector(p)
	}
	return out
}

func (c PointsConfig) triangle() (collide.Triangle, error) {
	if len(c.Points) != 3 {
		return collide.Triangle{}, errors.Wrapf(collide.ErrInvalidShape, "triangle needs 3 points, got %d", len(c.Points))
	}
	v := c.vertices()
	return collide.NewTriangle(v[0], v[1], v[2])
}

// Resolve runs the separating-axis test on the scene's shapes.
func (s Scene) Resolve(opts ...collide.Option) (collide.Result, error) {
	return collide.Resolve(s.A, s.B, s.Strategy, opts...)
}
