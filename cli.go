package main

import "flag"

type CLIOpts struct {
	doLog      bool
	configPath string
}

func parseCLIOpts() CLIOpts {
	var opt CLIOpts
	flag.BoolVar(&opt.doLog, "log", false, "Print debugging output to stdout")
	flag.StringVar(&opt.configPath, "config", "", "Use the specified config file instead of the default location")
	flag.Parse()
	return opt
}
