// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Do issues the call through r and decodes the JSON body into T.
// A 204 reply yields a nil result and a nil error whatever T is.
func Do[T any](ctx context.Context, r Requester, endpoint string, opts Options) (*T, error) {
	resp, err := r.Request(ctx, endpoint, opts)
	if err != nil {
		return nil, err
	}

	return Decode[T](resp)
}

// Decode turns a successful response into T and validates it.
func Decode[T any](resp *Response) (*T, error) {
	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	result := new(T)
	if err := json.Unmarshal(resp.Body, result); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	if err := validateResult(result); err != nil {
		return nil, err
	}

	return result, nil
}

// validateResult checks structs and the struct elements of slices. Other
// shapes carry no schema and pass as decoded.
func validateResult(result any) error {
	v := reflect.ValueOf(result)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		return validateStruct(v)
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			for elem.Kind() == reflect.Pointer {
				if elem.IsNil() {
					break
				}
				elem = elem.Elem()
			}
			if elem.Kind() != reflect.Struct {
				continue
			}
			if err := validateStruct(elem); err != nil {
				var vErr *ValidationError
				if errors.As(err, &vErr) {
					vErr.Type = fmt.Sprintf("%s[%d]", v.Type(), i)
				}
				return err
			}
		}
	}

	return nil
}

func validateStruct(v reflect.Value) error {
	var target any
	if v.CanAddr() {
		target = v.Addr().Interface()
	} else {
		target = v.Interface()
	}

	if err := validate.Struct(target); err != nil {
		return &ValidationError{Type: v.Type().String(), Err: err}
	}

	return nil
}
