package env

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"
)

const PREFIX = "BASE64URL_"

var OsEnvironMu = sync.Mutex{}
var OsEnviron = os.Environ

func SetTestOsEnviron(f func() []string) {
	OsEnvironMu.Lock()
	defer OsEnvironMu.Unlock()

	OsEnviron = f
}

func Decode(conf interface{}) error {
	return DecodeWithPrefix(conf, "")
}

// DecodeWithPrefix sets the fields of the struct pointer conf with their
// env tagged environment variable, e.g. BASE64URL_LOG_FORMAT for
// `env:"log_format"`. Empty variables are skipped.
func DecodeWithPrefix(conf interface{}, prefix string) error {
	ctxPrefix := PREFIX + prefix
	envMap := make(map[string]string)

	OsEnvironMu.Lock()
	envVars := OsEnviron()
	OsEnvironMu.Unlock()

	for _, v := range envVars {
		key, value, found := strings.Cut(v, "=")
		if !found || !strings.HasPrefix(key, ctxPrefix) {
			continue
		}
		envMap[strings.ToLower(key[len(ctxPrefix):])] = value
	}

	if len(envMap) == 0 {
		return nil
	}

	val := reflect.ValueOf(conf)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("env decode: expected a struct pointer, got %T", conf)
	}
	val = val.Elem()

	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)

		if val.Field(i).Kind() == reflect.Struct {
			if err := DecodeWithPrefix(val.Field(i).Addr().Interface(), prefix); err != nil {
				return err
			}
			continue
		}

		envVal, ok := field.Tag.Lookup("env")
		if !ok {
			continue
		}
		envVal = strings.Split(envVal, ",")[0]

		mapVal, exist := envMap[envVal]
		if !exist || mapVal == "" {
			continue
		}

		variableName := strings.ToUpper(ctxPrefix + envVal)
		switch val.Field(i).Interface().(type) {
		case bool:
			boolVal, err := strconv.ParseBool(mapVal)
			if err != nil {
				return fmt.Errorf("invalid boolean value for %q: %s", variableName, mapVal)
			}
			val.Field(i).SetBool(boolVal)
		case int:
			intVal, err := strconv.Atoi(mapVal)
			if err != nil {
				return fmt.Errorf("invalid integer value for %q: %s", variableName, mapVal)
			}
			val.Field(i).SetInt(int64(intVal))
		case string:
			val.Field(i).SetString(mapVal)
		case []string:
			slice := strings.Split(mapVal, ",")
			for idx, v := range slice {
				slice[idx] = strings.TrimSpace(v)
			}
			val.Field(i).Set(reflect.ValueOf(slice))
		case time.Duration:
			parsedDuration, err := time.ParseDuration(mapVal)
			if err != nil {
				return fmt.Errorf("invalid duration value for %q: %s", variableName, mapVal)
			}
			val.Field(i).Set(reflect.ValueOf(parsedDuration))
		default:
			return fmt.Errorf("env decode: type mapping not implemented: %v", field.Type)
		}
	}
	return nil
}
