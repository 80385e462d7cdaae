// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package stylist

import (
	"context"
	"strings"

	"AtelierAI/app/api/stylist/internal/logic/helper"
	"AtelierAI/app/api/stylist/internal/svc"
	"AtelierAI/app/api/stylist/internal/types"
	"AtelierAI/app/common/consts/errno"
	"AtelierAI/app/common/util"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatLogic {
	return &ChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ChatLogic) Chat(req *types.ChatRequest) (resp *types.ChatResponse, err error) {
	userId, err := util.UserIdFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, errors.New(int(errno.EmptyQuery), "empty query")
	}

	result := l.svcCtx.Stylist.Submit(l.ctx, userId, query)

	resp = &types.ChatResponse{
		Status_code: errno.StatusOK,
		Status_msg:  "ok",
		Plan:        helper.ToTravelPlan(result),
	}
	return
}
