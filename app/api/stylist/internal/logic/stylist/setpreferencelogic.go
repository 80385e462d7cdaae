// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package stylist

import (
	"context"

	"AtelierAI/app/api/stylist/internal/svc"
	"AtelierAI/app/api/stylist/internal/types"
	"AtelierAI/app/common/consts/errno"
	"AtelierAI/app/common/util"
	"AtelierAI/app/services/stylist/plan"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type SetPreferenceLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSetPreferenceLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SetPreferenceLogic {
	return &SetPreferenceLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SetPreferenceLogic) SetPreference(req *types.SetPreferenceRequest) (resp *types.SetPreferenceResponse, err error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	if !plan.ValidGender(req.Gender) {
		return nil, errors.New(int(errno.InvalidGender), "gender must be male, female or any")
	}

	if err = l.svcCtx.Stylist.SetPreference(l.ctx, userId, req.Gender); err != nil {
		l.Errorf("set preference for user %d: %v", userId, err)
		return nil, errors.New(int(errno.InternalError), "internal error")
	}

	resp = &types.SetPreferenceResponse{
		Status_code: errno.StatusOK,
		Status_msg:  "ok",
	}
	return
}
