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

//go:generate mockgen -destination mocks/broker_mock.go -source preheat.go -package mocks

package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	machineryv1tasks "github.com/RichardKnop/machinery/v1/tasks"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"go.opentelemetry.io/otel/trace"

	logger "d7y.io/preheat/internal/dflog"
	internaljob "d7y.io/preheat/internal/job"
	"d7y.io/preheat/manager/config"
	"d7y.io/preheat/manager/preheat"
	pkgredis "d7y.io/preheat/pkg/redis"
)

// releaseTimeout bounds the release of a reservation whose group was never sent.
const releaseTimeout = 5 * time.Second

// Broker publishes preheat groups and tracks the states of their tasks.
type Broker interface {
	// SendGroup publishes every signature of the group.
	SendGroup(context.Context, *machineryv1tasks.Group) error

	// GetGroupJobState aggregates the task states of the group.
	GetGroupJobState(string) (*internaljob.GroupJobState, error)

	// CancelGroup marks the unfinished tasks of the group as failed.
	CancelGroup(string) error
}

// reservation binds a preheat identifier to its group.
type reservation struct {
	GroupUUID string    `json:"group_uuid"`
	CreatedAt time.Time `json:"created_at"`
}

// preheatDispatcher is the machinery implementation of preheat.Dispatcher.
type preheatDispatcher struct {
	broker         Broker
	rdb            redis.UniversalClient
	queues         []internaljob.Queue
	registry       *registry
	reservationTTL time.Duration
}

// newPreheatDispatcher creates a new preheat.Dispatcher.
func newPreheatDispatcher(broker Broker, rdb redis.UniversalClient, queues []internaljob.Queue, registry *registry, reservationTTL time.Duration) preheat.Dispatcher {
	return &preheatDispatcher{
		broker:         broker,
		rdb:            rdb,
		queues:         queues,
		registry:       registry,
		reservationTTL: reservationTTL,
	}
}

// Submit creates the preheat group, a submission whose identifier is reserved
// collapses onto the existing group.
func (p *preheatDispatcher) Submit(ctx context.Context, req *preheat.ValidatedRequest) (*preheat.TaskHandle, error) {
	var span trace.Span
	ctx, span = tracer.Start(ctx, config.SpanPreheat, trace.WithSpanKind(trace.SpanKindProducer))
	span.SetAttributes(config.AttributePreheatType.String(req.Type.String()))
	span.SetAttributes(config.AttributePreheatURL.String(req.URL))
	span.SetAttributes(config.AttributePreheatIdentifier.String(req.Identifier))
	defer span.End()

	log := logger.WithPreheat(req.Identifier, req.URL)

	r, err := p.reservation(ctx, req.Identifier)
	if err == nil {
		log.Infof("preheat collapses onto group %s", r.GroupUUID)
		return p.duplicate(req.Identifier, r), nil
	}

	if !errors.Is(err, preheat.ErrTaskNotFound) {
		return nil, preheat.NewDispatchError(err)
	}

	files, err := p.files(ctx, req)
	if err != nil {
		log.Errorf("resolve preheat files failed: %v", err)
		return nil, preheat.NewDispatchError(err)
	}

	group, err := p.group(files)
	if err != nil {
		return nil, preheat.NewDispatchError(err)
	}
	span.SetAttributes(config.AttributePreheatGroupID.String(group.GroupUUID))

	r = &reservation{
		GroupUUID: group.GroupUUID,
		CreatedAt: time.Now(),
	}

	ok, err := p.reserve(ctx, req.Identifier, r)
	if err != nil {
		return nil, preheat.NewDispatchError(err)
	}

	if !ok {
		// A concurrent submission reserved the identifier first.
		r, err = p.reservation(ctx, req.Identifier)
		if err != nil {
			return nil, preheat.NewDispatchError(err)
		}

		log.Infof("preheat collapses onto group %s", r.GroupUUID)
		return p.duplicate(req.Identifier, r), nil
	}

	log.Infof("create preheat group %s in queues %v with %d files", group.GroupUUID, p.queues, len(files))
	if err := p.broker.SendGroup(ctx, group); err != nil {
		log.Errorf("create preheat group %s failed: %v", group.GroupUUID, err)
		if err := p.release(req.Identifier); err != nil {
			log.Errorf("release preheat reservation failed: %v", err)
		}

		return nil, preheat.NewDispatchError(err)
	}

	return &preheat.TaskHandle{
		ID:        req.Identifier,
		Status:    preheat.StatusPending,
		CreatedAt: r.CreatedAt,
		Created:   true,
	}, nil
}

// Cancel marks the unfinished tasks as failed and releases the identifier,
// schedulers that already consumed a task are not interrupted.
func (p *preheatDispatcher) Cancel(ctx context.Context, id string) error {
	r, err := p.reservation(ctx, id)
	if err != nil {
		if errors.Is(err, preheat.ErrTaskNotFound) {
			return err
		}

		return preheat.NewDispatchError(err)
	}

	var result *multierror.Error
	if err := p.broker.CancelGroup(r.GroupUUID); err != nil {
		result = multierror.Append(result, err)
	}

	if err := p.rdb.Del(ctx, reservationKey(id)).Err(); err != nil {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return preheat.NewDispatchError(err)
	}

	logger.WithGroupAndTaskID(r.GroupUUID, id).Info("preheat is canceled")
	return nil
}

// Status returns the aggregated state of the group reserved by id.
func (p *preheatDispatcher) Status(ctx context.Context, id string) (*preheat.TaskHandle, error) {
	r, err := p.reservation(ctx, id)
	if err != nil {
		if errors.Is(err, preheat.ErrTaskNotFound) {
			return nil, err
		}

		return nil, preheat.NewDispatchError(err)
	}

	handle, err := p.handle(id, r)
	if err != nil {
		return nil, preheat.NewDispatchError(err)
	}

	return handle, nil
}

// duplicate returns the handle of an existing group, a group that is reserved
// but not queryable yet is pending.
func (p *preheatDispatcher) duplicate(id string, r *reservation) *preheat.TaskHandle {
	handle, err := p.handle(id, r)
	if err != nil {
		logger.WithGroupAndTaskID(r.GroupUUID, id).Warnf("get group job state failed: %v", err)
		return &preheat.TaskHandle{
			ID:        id,
			Status:    preheat.StatusPending,
			CreatedAt: r.CreatedAt,
		}
	}

	return handle
}

func (p *preheatDispatcher) handle(id string, r *reservation) (*preheat.TaskHandle, error) {
	groupJobState, err := p.broker.GetGroupJobState(r.GroupUUID)
	if err != nil {
		return nil, err
	}

	return &preheat.TaskHandle{
		ID:        id,
		Status:    taskStatus(groupJobState.State),
		CreatedAt: r.CreatedAt,
	}, nil
}

// files generates download files of the preheat.
func (p *preheatDispatcher) files(ctx context.Context, req *preheat.ValidatedRequest) ([]internaljob.PreheatRequest, error) {
	switch req.Type {
	case preheat.TypeImage:
		image, err := preheat.ParseImageURL(req.URL)
		if err != nil {
			return nil, err
		}

		digests, header, err := p.registry.getLayers(ctx, req.URL, req.Headers.HTTPHeader())
		if err != nil {
			return nil, err
		}

		headers := preheat.Headers{}
		for name, values := range header {
			headers.Set(name, values[0])
		}

		var files []internaljob.PreheatRequest
		for _, digest := range digests {
			files = append(files, internaljob.PreheatRequest{
				Type:                req.Type.String(),
				URL:                 image.LayerURL(digest),
				Digest:              digest,
				FilteredQueryParams: req.Filter.String(),
				Identifier:          req.Identifier,
				Headers:             headers.Map(),
			})
		}

		return files, nil
	case preheat.TypeFile:
		return []internaljob.PreheatRequest{
			{
				Type:                req.Type.String(),
				URL:                 req.URL,
				FilteredQueryParams: req.Filter.String(),
				Identifier:          req.Identifier,
				Headers:             req.Headers.Map(),
			},
		}, nil
	default:
		return nil, errors.New("unknown preheat type")
	}
}

// group creates one signature per file for every queue.
func (p *preheatDispatcher) group(files []internaljob.PreheatRequest) (*machineryv1tasks.Group, error) {
	var signatures []*machineryv1tasks.Signature
	for _, queue := range p.queues {
		for _, file := range files {
			args, err := internaljob.MarshalRequest(file)
			if err != nil {
				return nil, err
			}

			signatures = append(signatures, &machineryv1tasks.Signature{
				UUID:       fmt.Sprintf("task_%s", uuid.New().String()),
				Name:       internaljob.PreheatJob,
				RoutingKey: queue.String(),
				Args:       args,
			})
		}
	}

	if len(signatures) == 0 {
		return nil, errors.New("preheat has no tasks")
	}

	return machineryv1tasks.NewGroup(signatures...)
}

func (p *preheatDispatcher) reservation(ctx context.Context, id string) (*reservation, error) {
	b, err := p.rdb.Get(ctx, reservationKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, preheat.ErrTaskNotFound
		}

		return nil, err
	}

	var r reservation
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, err
	}

	return &r, nil
}

func (p *preheatDispatcher) reserve(ctx context.Context, id string, r *reservation) (bool, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return false, err
	}

	return p.rdb.SetNX(ctx, reservationKey(id), b, p.reservationTTL).Result()
}

// release runs detached from the submission, which may be canceled already.
func (p *preheatDispatcher) release(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	return p.rdb.Del(ctx, reservationKey(id)).Err()
}

// reservationKey returns the redis key of the preheat identifier.
func reservationKey(id string) string {
	return pkgredis.MakePreheatKey(id)
}

// taskStatus maps the group job state to the task status.
func taskStatus(state string) string {
	switch state {
	case machineryv1tasks.StateSuccess:
		return preheat.StatusSuccess
	case machineryv1tasks.StateFailure:
		return preheat.StatusFailure
	default:
		return preheat.StatusPending
	}
}
