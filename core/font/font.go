/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 the glyphengine authors
*/

// Package font loads and caches scalable fonts, handing out TypeCases
// (a font scaled for a given point size) through a Registry. It
// delegates all font-file parsing to golang.org/x/image/font/{sfnt,
// opentype} rather than reading OpenType tables itself — realizing a
// typeface is in scope, but implementing the OpenType format is not.
package font

import (
	"errors"
	"fmt"
	"io/ioutil"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ScalableFont is a parsed font file at its natural (unscaled) size.
type ScalableFont struct {
	Fontname string
	Filepath string
	Binary   []byte
	SFNT     *sfnt.Font
}

// TypeCase is a ScalableFont rendered at a specific point size — what
// package shape's FaceResolver hands back as the font half of a
// RealizedFace.
type TypeCase struct {
	scalableFontParent *ScalableFont
	font               xfont.Face
	size               float64
}

// NullTypeCase is a TypeCase with no backing font, useful as a zero
// value a caller can check for before it is realized.
func NullTypeCase() *TypeCase {
	return &TypeCase{size: 10}
}

// LoadOpenTypeFont reads and parses a font file from disk.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := ioutil.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	return ParseOpenTypeFont(bytez)
}

// ParseOpenTypeFont parses an in-memory font file.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// PrepareCase scales sf to fontsize, producing a usable TypeCase.
func (sf *ScalableFont) PrepareCase(fontsize float64) (*TypeCase, error) {
	typecase := &TypeCase{scalableFontParent: sf}
	if fontsize < 5.0 || fontsize > 500.0 {
		fontsize = 10.0
	}
	options := &opentype.FaceOptions{Size: fontsize, DPI: 600}
	f, err := opentype.NewFace(sf.SFNT, options)
	if err == nil {
		typecase.font = f
		typecase.size = fontsize
	}
	return typecase, err
}

func (tc *TypeCase) ScalableFontParent() *ScalableFont { return tc.scalableFontParent }
func (tc *TypeCase) PtSize() float64                   { return tc.size }

// Font returns the scaled golang.org/x/image/font.Face, the type
// package shape and package render build RealizedFace/FontDriver
// adapters around.
func (tc *TypeCase) Font() xfont.Face { return tc.font }

// FallbackFont returns the font used when a requested family cannot be
// realized. It is always present: the bundled Go Sans, embedded via
// golang.org/x/image/font/gofont/goregular so the engine never depends
// on the host having any fonts installed.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once
var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	var err error
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font")
	}
	return gofont
}

// Registry caches loaded ScalableFonts and the TypeCases realized from
// them, keyed by normalized family name and point size.
type Registry struct {
	sync.Mutex
	fonts     map[string]*ScalableFont
	typecases map[string]*TypeCase
}

var globalFontRegistry *Registry
var globalRegistryCreation sync.Once

// GlobalRegistry is the process-wide default Registry.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

func NewRegistry() *Registry {
	return &Registry{
		fonts:     make(map[string]*ScalableFont),
		typecases: make(map[string]*TypeCase),
	}
}

// StoreFont registers f under its (normalized) font name.
func (fr *Registry) StoreFont(f *ScalableFont) {
	if f == nil {
		T().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	fname := NormalizeFontname(f.Fontname)
	T().Debugf("registry stores font %s as %s", f.Fontname, fname)
	fr.fonts[fname] = f
}

// TypeCase returns a cached or freshly scaled TypeCase for name at
// size. If name is not registered, it falls back to FallbackFont and
// returns a non-nil error alongside the usable fallback TypeCase — the
// caller is never handed a nil TypeCase. The name "fallback" itself always
// resolves to FallbackFont without an error.
func (fr *Registry) TypeCase(name string, size float64) (*TypeCase, error) {
	fname := NormalizeFontname(name)
	tname := NormalizeTypeCaseName(name, size)
	fr.Lock()
	defer fr.Unlock()
	if t, ok := fr.typecases[tname]; ok {
		return t, nil
	}
	if f, ok := fr.fonts[fname]; ok {
		t, err := f.PrepareCase(size)
		t.scalableFontParent = f
		fr.typecases[tname] = t
		return t, err
	}
	var err error
	if fname != NormalizeFontname("fallback") {
		err = errors.New("font " + name + " not found in registry")
		T().Errorf("registry: %v, absorbing into fallback font", err)
	}
	fbname := NormalizeTypeCaseName("fallback", size)
	if t, ok := fr.typecases[fbname]; ok {
		return t, err
	}
	f := FallbackFont()
	t, _ := f.PrepareCase(size)
	fr.fonts[NormalizeFontname("fallback")] = f
	fr.typecases[fbname] = t
	return t, err
}

func (fr *Registry) DebugList() {
	T().Debugf("--- registered fonts ---")
	for k, v := range fr.fonts {
		T().Debugf("font [%s] = %v", k, v.Fontname)
	}
	for k, v := range fr.typecases {
		T().Debugf("typecase [%s] = %v", k, v.scalableFontParent.Fontname)
	}
}

func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	return strings.ToLower(fname)
}

func NormalizeTypeCaseName(fname string, size float64) string {
	return fmt.Sprintf("%s-%.2f", NormalizeFontname(fname), size)
}
