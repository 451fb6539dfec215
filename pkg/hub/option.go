package hub

import (
	"fmt"
	"strconv"
)

type Option interface {
	HubName() string
	HubString() string
	Set(s string) error
}

type IntOption struct {
	Name  string
	Min   int
	Max   int
	Value *int
}

func (opt *IntOption) HubName() string {
	return opt.Name
}

func (opt *IntOption) HubString() string {
	return fmt.Sprintf("param name=%v value=%v type=int min=%v max=%v",
		opt.Name, *opt.Value, opt.Min, opt.Max)
}

func (opt *IntOption) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if v < opt.Min || v > opt.Max {
		return fmt.Errorf("%v: argument %v out of range [%v, %v]", opt.Name, v, opt.Min, opt.Max)
	}
	*opt.Value = v
	return nil
}
