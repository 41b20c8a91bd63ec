/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"reflect"
	"strings"

	"github.com/ARM-software/golang-fold/commonerrors"
)

// ValidateEmbedded uses reflection to find embedded structures and validate them.
// The returned error mentions the field (and its mapstructure tag) which failed validation.
func ValidateEmbedded(cfg IServiceConfiguration) error {
	r := reflect.ValueOf(cfg)
	if r.Kind() != reflect.Pointer || r.IsNil() || r.Elem().Kind() != reflect.Struct {
		return commonerrors.Newf(commonerrors.ErrInvalid, "configuration %T is not a pointer to a structure", cfg)
	}
	r = r.Elem()
	for i := 0; i < r.NumField(); i++ {
		f := r.Field(i)
		if f.Kind() != reflect.Struct || !f.CanAddr() || !r.Type().Field(i).IsExported() {
			continue
		}
		validator, ok := f.Addr().Interface().(IServiceConfiguration)
		if !ok {
			continue
		}
		err := validator.Validate()
		if err != nil {
			return commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "field %v failed validation", fieldDescription(r.Type().Field(i)))
		}
	}
	return nil
}

func fieldDescription(field reflect.StructField) string {
	tag, found := field.Tag.Lookup("mapstructure")
	tag = strings.TrimSpace(strings.Split(tag, ",")[0])
	if !found || tag == "" {
		return field.Name
	}
	return field.Name + " [" + tag + "]"
}
