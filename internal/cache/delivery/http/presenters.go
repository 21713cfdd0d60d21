package http

import "cs-chat-simulator/internal/cache"

// --- Request DTOs ---

type createReq struct {
	FileIDs []string `json:"fileIds" binding:"required,min=1"`
}

func (r createReq) toInput() cache.CreateInput {
	return cache.CreateInput{FileIDs: r.FileIDs}
}

type validateReq struct {
	CacheName string `json:"cacheName" binding:"required"`
}

func (r validateReq) toInput() cache.ValidateInput {
	return cache.ValidateInput{CacheName: r.CacheName}
}

// --- Response DTOs ---

type createResp struct {
	CacheName  string `json:"cacheName"`
	TTLSeconds int    `json:"ttlSeconds"`
	Message    string `json:"message"`
}

func newCreateResp(out cache.CreateOutput) createResp {
	return createResp{
		CacheName:  out.CacheName,
		TTLSeconds: out.TTLSeconds,
		Message:    "Cache created successfully",
	}
}

type cacheInfoResp struct {
	Name       string `json:"name"`
	CreateTime string `json:"createTime,omitempty"`
	UpdateTime string `json:"updateTime,omitempty"`
}

type validateResp struct {
	Valid bool           `json:"valid"`
	Cache *cacheInfoResp `json:"cache,omitempty"`
}

func newValidateResp(out cache.ValidateOutput) validateResp {
	resp := validateResp{Valid: out.Valid}
	if out.Cache != nil {
		resp.Cache = &cacheInfoResp{
			Name:       out.Cache.Name,
			CreateTime: out.Cache.CreateTime,
			UpdateTime: out.Cache.UpdateTime,
		}
	}
	return resp
}
