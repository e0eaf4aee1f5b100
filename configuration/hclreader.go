// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"io/ioutil"
	"reflect"

	"github.com/hashicorp/hcl"
	"github.com/mitchellh/mapstructure"
)

// read an HCL file into a configuration structure
//
// the file is decoded to plain maps first and then mapped onto the
// structure, so repeated blocks holding lists become slices of structs
func parseHCLFile(fileName string, config interface{}) error {
	b, err := ioutil.ReadFile(fileName)
	if err != nil {
		return err
	}

	var raw map[string]interface{}
	if err := hcl.Unmarshal(b, &raw); err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.DecodeHookFuncType(blockShape),
		WeaklyTypedInput: true,
		TagName:          "hcl",
		Result:           config,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// a block is decoded as a list of objects even when it occurs once,
// and may be a single object where a list is wanted
func blockShape(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	switch to.Kind() {
	case reflect.Struct, reflect.Map:
		if list, ok := data.([]map[string]interface{}); ok && 1 == len(list) {
			return list[0], nil
		}
	case reflect.Slice:
		if m, ok := data.(map[string]interface{}); ok {
			return []map[string]interface{}{m}, nil
		}
	}
	return data, nil
}
