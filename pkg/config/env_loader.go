/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/carverauto/seatmonitor/pkg/logger"
	"github.com/carverauto/seatmonitor/pkg/models"
)

var (
	// ErrDstMustBeNonNilPointer indicates that the destination must be a non-nil pointer.
	ErrDstMustBeNonNilPointer = errors.New("dst must be a non-nil pointer")
	// ErrDstMustBePointerToStruct indicates that the destination must be a pointer to a struct.
	ErrDstMustBePointerToStruct = errors.New("dst must be a pointer to a struct")

	errInvalidEnvValue = errors.New("invalid environment value")
)

var (
	durationType      = reflect.TypeOf(time.Duration(0))
	modelDurationType = reflect.TypeOf(models.Duration(0))
)

const configJSONVar = "CONFIG_JSON"

// EnvConfigLoader fills a config struct from environment variables named
// after its json tags: SEATMONITOR_DATABASE_POSTGRES_HOST sets
// Database.Postgres.Host. Optional sections behind pointers stay nil unless
// one of their variables is set.
type EnvConfigLoader struct {
	logger logger.Logger
	prefix string
	lookup func(string) (string, bool)
}

// NewEnvConfigLoader creates a loader for variables starting with prefix.
func NewEnvConfigLoader(log logger.Logger, prefix string) *EnvConfigLoader {
	if log == nil {
		log = createBasicLogger()
	}

	return &EnvConfigLoader{
		logger: log,
		prefix: prefix,
		lookup: os.LookupEnv,
	}
}

// Load implements ConfigLoader. <prefix>CONFIG_JSON, when set, holds the whole
// document and no other variable is read.
func (e *EnvConfigLoader) Load(_ context.Context, _ string, dst interface{}) error {
	if raw, ok := e.lookup(e.prefix + configJSONVar); ok && strings.TrimSpace(raw) != "" {
		if err := json.Unmarshal([]byte(raw), dst); err != nil {
			return fmt.Errorf("failed to unmarshal %s%s: %w", e.prefix, configJSONVar, err)
		}

		e.logger.Info().Str("env", e.prefix+configJSONVar).Msg("Loaded configuration from environment")

		return nil
	}

	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return ErrDstMustBeNonNilPointer
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return ErrDstMustBePointerToStruct
	}

	count, err := e.fillStruct(v, e.prefix)
	if err != nil {
		return err
	}

	e.logger.Info().Int("variables", count).Str("prefix", e.prefix).Msg("Loaded configuration from environment")

	return nil
}

// fillStruct returns how many variables were applied under prefix.
func (e *EnvConfigLoader) fillStruct(v reflect.Value, prefix string) (int, error) {
	t := v.Type()
	count := 0

	for i := range t.NumField() {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		name := jsonName(t.Field(i))
		if name == "" {
			continue
		}

		n, err := e.fillField(field, prefix+strings.ToUpper(name))
		if err != nil {
			return count, err
		}

		count += n
	}

	return count, nil
}

func (e *EnvConfigLoader) fillField(field reflect.Value, key string) (int, error) {
	ft := field.Type()

	if ft.Kind() == reflect.Struct {
		return e.fillStruct(field, key+"_")
	}

	if ft.Kind() == reflect.Ptr && ft.Elem().Kind() == reflect.Struct {
		section := reflect.New(ft.Elem())
		if !field.IsNil() {
			section.Elem().Set(field.Elem())
		}

		n, err := e.fillStruct(section.Elem(), key+"_")
		if err != nil || n == 0 {
			return n, err
		}

		field.Set(section)

		return n, nil
	}

	raw, ok := e.lookup(key)
	if !ok || raw == "" {
		return 0, nil
	}

	target := field
	if ft.Kind() == reflect.Ptr {
		target = reflect.New(ft.Elem()).Elem()
	}

	if err := setValue(target, raw); err != nil {
		return 0, fmt.Errorf("%w %s: %w", errInvalidEnvValue, key, err)
	}

	if ft.Kind() == reflect.Ptr {
		field.Set(target.Addr())
	}

	e.logger.Debug().Str("env", key).Msg("Config value set from environment")

	return 1, nil
}

func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return ""
	}

	name, _, _ := strings.Cut(tag, ",")

	return strings.ReplaceAll(name, ".", "_")
}

func setValue(v reflect.Value, raw string) error {
	//nolint:exhaustive // remaining kinds decode as JSON
	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}

		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Type() == durationType || v.Type() == modelDurationType {
			d, err := time.ParseDuration(raw)
			if err != nil {
				return err
			}

			v.SetInt(int64(d))

			return nil
		}

		i, err := strconv.ParseInt(raw, 10, v.Type().Bits())
		if err != nil {
			return err
		}

		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(raw, 10, v.Type().Bits())
		if err != nil {
			return err
		}

		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, v.Type().Bits())
		if err != nil {
			return err
		}

		v.SetFloat(f)
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return json.Unmarshal([]byte(raw), v.Addr().Interface())
		}

		parts := strings.Split(raw, ",")
		out := reflect.MakeSlice(v.Type(), 0, len(parts))

		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = reflect.Append(out, reflect.ValueOf(p).Convert(v.Type().Elem()))
			}
		}

		v.Set(out)
	default:
		return json.Unmarshal([]byte(raw), v.Addr().Interface())
	}

	return nil
}
