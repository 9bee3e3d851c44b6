// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command demo runs a terminal editor form over a sample object,
// with one control per field, and persists the edited values as TOML
// across runs.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"

	"cogentcore.org/classview"
	"cogentcore.org/classview/base/errors"
	"cogentcore.org/classview/base/logx"
	"cogentcore.org/classview/enums"
	"cogentcore.org/classview/iox/tomlx"
	"cogentcore.org/classview/toolkit/termkit"
)

// Moods is a sample enum with the conventional MoodsN sentinel.
type Moods int32

const (
	Happy Moods = iota
	Sad
	Excited
	MoodsN
)

var moodsNames = []string{"Happy", "Sad", "Excited", "MoodsN"}

func (m Moods) String() string {
	if m < 0 || int(m) >= len(moodsNames) {
		return fmt.Sprintf("Moods(%d)", m)
	}
	return moodsNames[m]
}

func (m Moods) Int64() int64      { return int64(m) }
func (m Moods) Desc() string      { return m.String() }
func (m Moods) IsValid() bool     { return m >= 0 && m < MoodsN }
func (m *Moods) SetInt64(i int64) { *m = Moods(i) }

func (m Moods) Values() []enums.Enum {
	vals := make([]enums.Enum, MoodsN+1)
	for i := range vals {
		vals[i] = Moods(i)
	}
	return vals
}

func (m *Moods) SetString(s string) error {
	for i, nm := range moodsNames {
		if nm == s {
			*m = Moods(i)
			return nil
		}
	}
	return fmt.Errorf("invalid Moods name: %q", s)
}

// Address is a nested viewable edited inline in the parent form.
type Address struct {
	Street string
	Zip    int
}

func (a *Address) ClassSchema() classview.Schema {
	return classview.Schema{
		classview.NewField("Street", &a.Street, `width:"30"`),
		classview.NewField("Zip", &a.Zip, `min:"0"`),
	}
}

// Profile is a nested viewable edited in a modal dialog.
type Profile struct {
	Bio     string
	Website string
}

func (pr *Profile) ClassSchema() classview.Schema {
	return classview.Schema{
		classview.NewField("Bio", &pr.Bio, `width:"60"`),
		classview.NewField("Website", &pr.Website, `width:"40"`),
	}
}

// Person is the sample object edited by the demo.
type Person struct {
	Name    string
	Age     int
	Rating  float32
	Mood    Moods
	Active  bool
	ID      int
	Home    *Address
	Profile *Profile
}

func (p *Person) ClassSchema() classview.Schema {
	return classview.Schema{
		classview.NewField("Name", &p.Name, `width:"40" desc:"full name"`),
		classview.NewField("Age", &p.Age, `min:"0" max:"150" desc:"age in years"`),
		classview.NewField("Rating", &p.Rating, `min:"0" max:"5" step:"0.5" format:"%.1f"`),
		classview.NewField("Mood", &p.Mood, ""),
		classview.NewField("Active", &p.Active, ""),
		classview.NewField("ID", &p.ID, `inactive:"+" desc:"assigned, not editable"`),
		classview.NewField("Home", &p.Home, `view:"inline"`),
		classview.NewField("Profile", &p.Profile, `desc:"opens a dialog"`),
	}
}

func main() {
	vv := flag.Bool("vv", false, "debug verbosity")
	v := flag.Bool("v", false, "info verbosity")
	q := flag.Bool("q", false, "errors only")
	flag.Parse()
	logx.SetDefaultLogger()
	logx.UserLevel = logx.LevelFromFlags(*vv, *v, *q)

	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

func run() error {
	p := &Person{
		Name:    "Gopher",
		Age:     13,
		Rating:  4.5,
		Mood:    Happy,
		Active:  true,
		ID:      1001,
		Home:    &Address{Street: "Gopher Way", Zip: 12345},
		Profile: &Profile{Bio: "Likes burrowing."},
	}
	sch := p.ClassSchema()

	statePath, err := stateFile()
	if err != nil {
		return err
	}
	state := map[string]any{}
	if err := tomlx.Open(&state, statePath); err == nil {
		errors.Log(sch.SetFieldValues(state))
	}

	tk := termkit.New()
	cv := classview.NewClassView(tk, "person", sch)
	cv.Config(nil)

	rg := classview.NewRegistry()
	rg.Add(cv)
	defer rg.Remove(cv.Name)

	if err := tk.Run("Person editor"); err != nil {
		return err
	}
	return tomlx.Save(sch.FieldValues(), statePath)
}

// stateFile returns the path the edited values are persisted at,
// under the user home directory.
func stateFile() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "classview", "demo.toml"), nil
}
