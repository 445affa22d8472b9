// Copyright 2018 David Lazar. All rights reserved.
// Use of this source code is governed by the GNU AGPL
// license that can be found in the LICENSE file.

package cmdconf

import (
	"reflect"
	"testing"

	"vuvuzela.io/alpenhorn/encoding/toml"
)

func TestTableConfigTOML(t *testing.T) {
	conf := NewTableConfig()
	data := conf.TOML()

	conf2 := new(TableConfig)
	if err := toml.Unmarshal(data, conf2); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(conf, conf2) {
		t.Fatalf("round-trip failed:\nbefore=%#v\nafter=%#v\n", *conf, *conf2)
	}

	if err := conf2.Validate(); err != nil {
		t.Fatal(err)
	}
	d, err := conf2.Build()
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Prob(0); got != 0.5 {
		t.Fatalf("default config: expecting Prob(0)=0.5, got %v", got)
	}
}

func TestTableConfigValidate(t *testing.T) {
	conf := NewTableConfig()
	conf.Kind = "zipf"
	if err := conf.Validate(); err == nil {
		t.Fatal("expecting error for unknown kind")
	}

	conf = NewTableConfig()
	conf.Lo, conf.Hi = 5, -5
	if err := conf.Validate(); err == nil {
		t.Fatal("expecting error for empty window")
	}

	conf = NewTableConfig()
	conf.Lo, conf.Hi = 0, 1<<30
	if err := conf.Validate(); err == nil {
		t.Fatal("expecting error for oversized window")
	}

	conf = NewTableConfig()
	conf.Locale = ""
	if err := conf.Validate(); err == nil {
		t.Fatal("expecting error for empty locale")
	}
}
