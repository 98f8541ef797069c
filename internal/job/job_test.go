/*
 *     Copyright 2024 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package job

import (
	"testing"
	"time"

	machineryv1tasks "github.com/RichardKnop/machinery/v1/tasks"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

func TestJob_New(t *testing.T) {
	tests := []struct {
		name   string
		config func(t *testing.T) *Config
		expect func(t *testing.T, job *Job, err error)
	}{
		{
			name: "new job with redis",
			config: func(t *testing.T) *Config {
				mr := miniredis.RunT(t)
				return &Config{Addrs: []string{mr.Addr()}, BrokerDB: 1, BackendDB: 2}
			},
			expect: func(t *testing.T, job *Job, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(GlobalQueue, job.Queue)
				assert.NotNil(job.Server)
			},
		},
		{
			name: "redis addrs is empty",
			config: func(t *testing.T) *Config {
				return &Config{}
			},
			expect: func(t *testing.T, job *Job, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "empty redis addrs config is not specified")
				assert.Nil(job)
			},
		},
		{
			name: "redis is unreachable",
			config: func(t *testing.T) *Config {
				mr := miniredis.RunT(t)
				addr := mr.Addr()
				mr.Close()
				return &Config{Addrs: []string{addr}}
			},
			expect: func(t *testing.T, job *Job, err error) {
				assert := assert.New(t)
				assert.Error(err)
				assert.Nil(job)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			job, err := New(tc.config(t), GlobalQueue)
			tc.expect(t, job, err)
		})
	}
}

func TestJob_GetSchedulerQueue(t *testing.T) {
	assert := assert.New(t)

	queue, err := GetSchedulerQueue(1, "foo")
	assert.NoError(err)
	assert.Equal(Queue("scheduler_1_foo"), queue)
	assert.Equal("scheduler_1_foo", queue.String())

	_, err = GetSchedulerQueue(0, "foo")
	assert.EqualError(err, "empty cluster id config is not specified")

	_, err = GetSchedulerQueue(1, "")
	assert.EqualError(err, "empty hostname config is not specified")
}

func TestJob_MarshalRequest(t *testing.T) {
	assert := assert.New(t)

	req := PreheatRequest{
		Type:                "file",
		URL:                 "http://example.com/foo",
		FilteredQueryParams: "a,b",
		Identifier:          "bar",
		Headers:             map[string]string{"x-foo": "1"},
	}

	args, err := MarshalRequest(req)
	assert.NoError(err)
	assert.Len(args, 1)
	assert.Equal("string", args[0].Type)

	var decoded PreheatRequest
	assert.NoError(UnmarshalRequest(args[0].Value.(string), &decoded))
	assert.Equal(req, decoded)
}

func TestJob_AggregateGroupJobState(t *testing.T) {
	createdAt := time.Now()
	tests := []struct {
		name       string
		taskStates []*machineryv1tasks.TaskState
		expect     func(t *testing.T, state *GroupJobState, err error)
	}{
		{
			name:       "empty group",
			taskStates: nil,
			expect: func(t *testing.T, state *GroupJobState, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "empty group")
			},
		},
		{
			name: "failure wins",
			taskStates: []*machineryv1tasks.TaskState{
				{TaskUUID: "a", State: machineryv1tasks.StateSuccess, CreatedAt: createdAt},
				{TaskUUID: "b", State: machineryv1tasks.StatePending, CreatedAt: createdAt},
				{TaskUUID: "c", State: machineryv1tasks.StateFailure, CreatedAt: createdAt},
			},
			expect: func(t *testing.T, state *GroupJobState, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(machineryv1tasks.StateFailure, state.State)
				assert.Equal("foo", state.GroupUUID)
				assert.Len(state.JobStates, 3)
			},
		},
		{
			name: "unfinished task keeps group pending",
			taskStates: []*machineryv1tasks.TaskState{
				{TaskUUID: "a", State: machineryv1tasks.StateSuccess, CreatedAt: createdAt},
				{TaskUUID: "b", State: machineryv1tasks.StateStarted, CreatedAt: createdAt},
			},
			expect: func(t *testing.T, state *GroupJobState, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(machineryv1tasks.StatePending, state.State)
			},
		},
		{
			name: "all succeeded",
			taskStates: []*machineryv1tasks.TaskState{
				{TaskUUID: "a", State: machineryv1tasks.StateSuccess, CreatedAt: createdAt},
				{TaskUUID: "b", State: machineryv1tasks.StateSuccess, CreatedAt: createdAt},
			},
			expect: func(t *testing.T, state *GroupJobState, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(machineryv1tasks.StateSuccess, state.State)
				assert.Equal(createdAt, state.CreatedAt)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			state, err := AggregateGroupJobState("foo", tc.taskStates)
			tc.expect(t, state, err)
		})
	}
}
