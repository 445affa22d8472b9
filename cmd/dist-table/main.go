// Copyright 2018 David Lazar. All rights reserved.
// Use of this source code is governed by the GNU AGPL
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io/ioutil"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"vuvuzela.io/alpenhorn/cmd/cmdutil"
	"vuvuzela.io/alpenhorn/encoding/toml"
	"vuvuzela.io/alpenhorn/log"

	"github.com/ChiralMichael/framework/cmd/cmdconf"
	"github.com/ChiralMichael/framework/dist"
)

var (
	doinit   = flag.Bool("init", false, "create config file")
	confPath = flag.String("conf", "table.conf", "config file")
	lo       = flag.Int("lo", 0, "table lower bound (overrides config)")
	hi       = flag.Int("hi", 0, "table upper bound (overrides config)")
	locale   = flag.String("locale", "", "BCP 47 locale tag (overrides config)")
)

func writeNewConfig(path string) {
	data := cmdconf.NewTableConfig().TOML()
	err := ioutil.WriteFile(path, data, 0600)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s\n", path)
}

func main() {
	flag.Parse()

	if *doinit {
		if cmdutil.Overwrite(*confPath) {
			writeNewConfig(*confPath)
		}
		return
	}

	data, err := ioutil.ReadFile(*confPath)
	if err != nil {
		log.Fatal(err)
	}
	conf := new(cmdconf.TableConfig)
	err = toml.Unmarshal(data, conf)
	if err != nil {
		log.Fatalf("error parsing config %q: %s", *confPath, err)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "lo":
			conf.Lo = *lo
		case "hi":
			conf.Hi = *hi
		case "locale":
			conf.Locale = *locale
		}
	})

	if err := conf.Validate(); err != nil {
		log.Fatalf("invalid config %q: %s", *confPath, err)
	}

	d, err := conf.Build()
	if err != nil {
		log.Fatal(err)
	}

	tag, err := language.Parse(conf.Locale)
	if err != nil {
		log.Fatalf("bad locale %q: %s", conf.Locale, err)
	}
	p := message.NewPrinter(tag)

	if td, ok := d.(dist.Texter); ok {
		fmt.Println(td.Text(p))
	} else {
		fmt.Printf("%v\n", d)
	}

	table := dist.Tabulate(d, conf.Lo, conf.Hi)
	for i, pr := range table {
		p.Printf("%8d  %v\n", conf.Lo+i, number.Decimal(pr, number.MaxFractionDigits(9)))
	}

	p.Printf("mean     = %v\n", number.Decimal(d.Mean()))
	p.Printf("variance = %v\n", number.Decimal(d.Variance()))

	if h, err := d.Entropy(); err == nil {
		p.Printf("entropy  = %v\n", number.Decimal(h))
	} else {
		fmt.Printf("entropy  = %s\n", err)
	}
	if c, err := d.CDF(conf.Hi); err == nil {
		p.Printf("cdf(%d)  = %v\n", conf.Hi, number.Decimal(c))
	} else {
		fmt.Printf("cdf      = %s\n", err)
	}
}
