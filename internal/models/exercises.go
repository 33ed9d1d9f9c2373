// exercises.go
//
// OctoFit Tracker data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of octofit-tracker.
// octofit-tracker is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// octofit-tracker is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with octofit-tracker.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Exercise is one entry of a workout. Name is always present; sets, reps and
// seconds are optional numbers kept as written, and any other keys are carried through in Extra.
// An entry posted as a bare string keeps that shape when written back.
type Exercise struct {
	Name    string
	Sets    *json.Number
	Reps    *json.Number
	Seconds *json.Number
	Extra   map[string]json.RawMessage
	bare    bool
}

// NamedExercise builds an entry that serializes as a bare string.
func NamedExercise(name string) Exercise {
	return Exercise{Name: name, bare: true}
}

// SetsReps builds a sets-and-reps entry.
func SetsReps(name string, sets, reps int) Exercise {
	return Exercise{Name: name, Sets: number(sets), Reps: number(reps)}
}

// Timed builds a hold-for-seconds entry.
func Timed(name string, sets, seconds int) Exercise {
	return Exercise{Name: name, Sets: number(sets), Seconds: number(seconds)}
}

func number(n int) *json.Number {
	v := json.Number(strconv.Itoa(n))
	return &v
}

func (e *Exercise) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*e = NamedExercise(name)
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("exercise must be a string or an object: %w", err)
	}
	if fields == nil {
		return fmt.Errorf("exercise must be a string or an object")
	}

	out := Exercise{}
	if raw, ok := fields["name"]; ok {
		if err := json.Unmarshal(raw, &out.Name); err != nil {
			return fmt.Errorf("exercise name: %w", err)
		}
		delete(fields, "name")
	}
	for key, dst := range map[string]**json.Number{"sets": &out.Sets, "reps": &out.Reps, "seconds": &out.Seconds} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		raw = bytes.TrimSpace(raw)
		var f float64
		if len(raw) == 0 || raw[0] == '"' || string(raw) == "null" || json.Unmarshal(raw, &f) != nil {
			return fmt.Errorf("exercise %s must be a number, got %s", key, string(raw))
		}
		n := json.Number(raw)
		*dst = &n
		delete(fields, key)
	}
	if len(fields) > 0 {
		out.Extra = fields
	}
	*e = out
	return nil
}

func (e Exercise) MarshalJSON() ([]byte, error) {
	if e.bare && e.Sets == nil && e.Reps == nil && e.Seconds == nil && len(e.Extra) == 0 {
		return json.Marshal(e.Name)
	}
	fields := make(map[string]any, 4+len(e.Extra))
	for k, v := range e.Extra {
		fields[k] = v
	}
	fields["name"] = e.Name
	if e.Sets != nil {
		fields["sets"] = *e.Sets
	}
	if e.Reps != nil {
		fields["reps"] = *e.Reps
	}
	if e.Seconds != nil {
		fields["seconds"] = *e.Seconds
	}
	return json.Marshal(fields)
}

// Exercises is the ordered exercise list stored as a JSON column.
type Exercises []Exercise

func (x Exercises) Value() (driver.Value, error) {
	if x == nil {
		x = Exercises{}
	}
	b, err := json.Marshal([]Exercise(x))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (x *Exercises) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*x = Exercises{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Exercises", value)
	}
	var list []Exercise
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	if list == nil {
		list = []Exercise{}
	}
	*x = list
	return nil
}

func (Exercises) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}
