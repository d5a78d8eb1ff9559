package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/Drolfothesgnir/whocolor/db"
	"github.com/Drolfothesgnir/whocolor/tmpstore"
	"github.com/Drolfothesgnir/whocolor/whocolor"
	"github.com/gin-gonic/gin"
)

const (
	StatusCaching   = "is caching"
	StatusKickedOff = "not cached, kicked off caching"
)

type StatusResponse struct {
	Status string `json:"status"`
}

type byTitleURI struct {
	Lang  string `uri:"lang" json:"lang" binding:"required,wiki_lang"`
	Title string `uri:"title" json:"title" binding:"required,max=255"`
}

type byPageIDURI struct {
	Lang   string `uri:"lang" json:"lang" binding:"required,wiki_lang"`
	PageID int64  `uri:"page_id" json:"page_id" binding:"required,gt=0"`
}

type revisionQuery struct {
	RevID int64 `form:"rev_id" json:"rev_id" binding:"gte=0"`
}

func (service *Service) getWhoColorByTitle(ctx *gin.Context) {
	var uri byTitleURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	var query revisionQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	service.serveWhoColor(ctx, whocolor.Request{
		Lang:  uri.Lang,
		Title: uri.Title,
		RevID: query.RevID,
	})
}

func (service *Service) getWhoColorByPageID(ctx *gin.Context) {
	var uri byPageIDURI
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	var query revisionQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...))
		return
	}

	service.serveWhoColor(ctx, whocolor.Request{
		Lang:   uri.Lang,
		PageID: uri.PageID,
		RevID:  query.RevID,
	})
}

// serveWhoColor answers from the cache, then from the archive, and kicks off
// the annotation in the background if neither has the result.
func (service *Service) serveWhoColor(ctx *gin.Context, req whocolor.Request) {
	key := req.CacheKey()
	log := service.log.With().Str("key", key).Logger()

	res, err := service.cache.GetResult(ctx, key)
	if err == nil {
		ctx.JSON(http.StatusOK, res)
		return
	}
	if !errors.Is(err, tmpstore.ErrCacheMiss) {
		// the cache is an optimization, keep serving without it
		log.Warn().Err(err).Msg("failed to read cached result")
	}

	// a revision never changes, so an archived annotation stays valid
	if req.RevID > 0 {
		archived, err := service.store.GetAnnotation(ctx, req.Lang, req.RevID)
		switch {
		case err == nil:
			if err := service.cache.SaveResult(ctx, key, &archived.Result, service.config.CacheTTL); err != nil {
				log.Warn().Err(err).Msg("failed to cache archived result")
			}
			ctx.JSON(http.StatusOK, archived.Result)
			return
		case errors.Is(err, db.ErrDataCorrupted):
			// the annotation is computed again and archived by the job
			log.Error().Err(err).Msg("archived result is corrupted, dropping it")
			if err := service.store.DeleteAnnotation(ctx, req.Lang, req.RevID); err != nil {
				log.Warn().Err(err).Msg("failed to drop corrupted archived result")
			}
		case !errors.Is(err, db.ErrRecordNotFound):
			log.Warn().Err(err).Msg("failed to read archived result")
		}
	}

	failure, err := service.cache.GetFailure(ctx, key)
	if err == nil {
		if failure.NotFound {
			ctx.JSON(http.StatusNotFound, NewErrorResponse(ErrNotFound))
			return
		}
		ctx.JSON(http.StatusBadGateway, NewErrorResponse(ErrUpstream))
		return
	}
	if !errors.Is(err, tmpstore.ErrCacheMiss) {
		log.Warn().Err(err).Msg("failed to read remembered failure")
	}

	pending, err := service.cache.IsPending(ctx, key)
	if err != nil {
		log.Warn().Err(err).Msg("failed to check pending job")
	}
	if pending {
		ctx.JSON(http.StatusAccepted, StatusResponse{StatusCaching})
		return
	}

	service.kickOff(req)
	ctx.JSON(http.StatusAccepted, StatusResponse{StatusKickedOff})
}

// kickOff starts the annotation job in the background.
// Concurrent requests for the same key within this process share one job.
func (service *Service) kickOff(req whocolor.Request) {
	key := req.CacheKey()

	service.jobsWG.Add(1)
	go func() {
		defer service.jobsWG.Done()

		_, _, _ = service.jobs.Do(key, func() (any, error) {
			service.runJob(req)
			return nil, nil
		})
	}()
}

// runJob annotates the revision unless another worker already owns the key,
// and stores the result or the failure.
func (service *Service) runJob(req whocolor.Request) {
	key := req.CacheKey()
	log := service.log.With().Str("key", key).Logger()

	ctx, cancel := context.WithTimeout(service.jobsCtx, service.config.JobTimeout)
	defer cancel()

	owner, ok, err := service.cache.MarkPending(ctx, key, service.config.PendingTTL)
	if err != nil {
		log.Error().Err(err).Msg("failed to mark job as pending")
		return
	}
	if !ok {
		log.Debug().Msg("job is owned by another worker")
		return
	}

	defer func() {
		// the job context may be expired already
		if err := service.cache.ClearPending(context.WithoutCancel(ctx), key, owner); err != nil {
			log.Warn().Err(err).Msg("failed to clear pending marker")
		}
	}()

	log.Info().Msg("annotation started")

	res, err := service.annotator.Handle(ctx, req)
	if err != nil {
		notFound := errors.Is(err, whocolor.ErrNotFound)
		if notFound {
			log.Info().Err(err).Msg("article not found")
		} else {
			log.Error().Err(err).Msg("annotation failed")
		}

		failure := tmpstore.Failure{
			NotFound: notFound,
			Message:  err.Error(),
			FailedAt: service.now(),
		}
		if err := service.cache.SaveFailure(ctx, key, failure, service.config.FailureTTL); err != nil {
			log.Warn().Err(err).Msg("failed to remember failure")
		}
		return
	}

	if err := service.cache.SaveResult(ctx, key, res, service.config.CacheTTL); err != nil {
		log.Error().Err(err).Msg("failed to cache result")
	}

	// the same revision is reachable by its exact address too
	exact := whocolor.Request{Lang: req.Lang, PageID: res.PageID, RevID: res.RevID}
	if exactKey := exact.CacheKey(); exactKey != key {
		if err := service.cache.SaveResult(ctx, exactKey, res, service.config.CacheTTL); err != nil {
			log.Warn().Err(err).Msg("failed to cache result by revision")
		}
	}

	if _, err := service.store.UpsertAnnotation(ctx, db.UpsertAnnotationParams{Lang: req.Lang, Result: res}); err != nil {
		log.Error().Err(err).Msg("failed to archive result")
	}

	log.Info().
		Int64("rev_id", res.RevID).
		Int("biggest_conflict_score", res.BiggestConflictScore).
		Msg("annotation finished")
}
