// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package stylist

import (
	"context"

	"AtelierAI/app/api/stylist/internal/svc"
	"AtelierAI/app/api/stylist/internal/types"
	"AtelierAI/app/common/consts/errno"
	"AtelierAI/app/common/util"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type GetPreferenceLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetPreferenceLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetPreferenceLogic {
	return &GetPreferenceLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetPreferenceLogic) GetPreference() (resp *types.GetPreferenceResponse, err error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	gender, err := l.svcCtx.Stylist.GetPreference(l.ctx, userId)
	if err != nil {
		l.Errorf("get preference for user %d: %v", userId, err)
		return nil, errors.New(int(errno.InternalError), "internal error")
	}

	resp = &types.GetPreferenceResponse{
		Status_code: errno.StatusOK,
		Status_msg:  "ok",
		Gender:      gender,
	}
	return
}
