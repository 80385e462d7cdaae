// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package stylist

import (
	"context"

	"AtelierAI/app/api/stylist/internal/logic/helper"
	"AtelierAI/app/api/stylist/internal/svc"
	"AtelierAI/app/api/stylist/internal/types"
	"AtelierAI/app/common/consts/errno"
	"AtelierAI/app/common/util"

	"github.com/zeromicro/go-zero/core/logx"
)

type GetPlanLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewGetPlanLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetPlanLogic {
	return &GetPlanLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *GetPlanLogic) GetPlan() (resp *types.GetPlanResponse, err error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	resp = &types.GetPlanResponse{
		Status_code: errno.StatusOK,
		Status_msg:  "ok",
	}
	if latest := l.svcCtx.Stylist.Latest(userId); latest != nil {
		converted := helper.ToTravelPlan(latest)
		resp.Plan = &converted
	}
	return
}
