package mockllm

import "cs-chat-simulator/pkg/gemini"

// builtinScenarios covers the common customer-service situations. Order
// matters: the first keyword hit wins, and the trailing greeting entry is the
// fallback for unmatched queries.
var builtinScenarios = []scenario{
	{
		id:       "order-status",
		keywords: []string{"주문 상태", "주문번호", "배송 준비"},
		response: "고객님의 주문 상태를 확인해 드리겠습니다. 주문번호를 알려주시면 더 자세히 확인해 드릴 수 있습니다. 최근 주문하신 ORD1001은 현재 배송 준비 중입니다.",
	},
	{
		id:       "product-return",
		keywords: []string{"반품"},
		response: "제품 반품 요청을 도와드리겠습니다. 반품하시려는 제품과 주문번호를 알려주시면 반품 절차를 안내해 드리겠습니다. 반품 사유도 함께 알려주시면 더 빠른 처리가 가능합니다.",
	},
	{
		id:       "refund-inquiry",
		keywords: []string{"환불"},
		response: "환불 문의 주셔서 감사합니다. 환불을 원하시는 주문의 주문번호를 알려주시면 환불 상태를 확인해 드리겠습니다. 환불은 결제 수단에 따라 처리 시간이 다를 수 있습니다.",
	},
	{
		id:       "product-complaint",
		keywords: []string{"불만", "불량", "문제가 있"},
		response: "제품에 불편을 드려 정말 죄송합니다. 어떤 제품에 문제가 있으신지, 그리고 어떤 부분이 불만족스러우신지 자세히 알려주시면 빠르게 조치해 드리겠습니다. 필요하다면 교환이나 환불 처리도 도와드릴 수 있습니다.",
	},
	{
		id:       "delivery-delay",
		keywords: []string{"배송 지연", "배송이 늦"},
		response: "배송 지연으로 불편을 드려 죄송합니다. 현재 물류센터의 배송량이 증가하여 일부 지연이 발생하고 있습니다. 고객님의 주문번호를 알려주시면 정확한 배송 상태를 확인해 드리겠습니다.",
	},
	{
		id:       "account-issue",
		keywords: []string{"비밀번호", "계정", "로그인"},
		response: "계정 접근에 문제가 있으시군요. 고객님의 계정 보안을 위해 본인 확인 절차가 필요합니다. 가입 시 사용하신 이메일 주소와 전화번호 뒷자리를 알려주시면 비밀번호 재설정 링크를 보내드리겠습니다.",
	},
	{
		id:       "product-availability",
		keywords: []string{"재고", "입고"},
		response: "찾으시는 제품의 재고 여부를 확인해 드리겠습니다. 어떤 제품을 찾고 계신지 제품명이나 제품 코드를 알려주시면 재고 상태를 확인해 드리겠습니다.",
	},
	{
		id:       "tool-call-ticket",
		keywords: []string{"티켓", "담당 부서", "추가 확인"},
		response: "고객님의 문의 사항을 기록하기 위해 티켓을 생성해 드리겠습니다. 이 문제는 담당 부서에서 추가 확인이 필요할 것 같습니다. 티켓 번호가 생성되면 알려드리겠습니다.",
		toolCall: &gemini.FunctionCall{
			Name: "create_ticket",
			Args: map[string]interface{}{
				"type":    "other",
				"details": "Need more help with the request",
			},
		},
	},
	{
		id:       "general-greeting",
		keywords: []string{"안녕"},
		response: "안녕하세요! CS 센터입니다. 오늘 어떤 도움이 필요하신가요? 주문 관련 문의, 제품 정보, 반품/교환, 계정 관리 등 어떤 내용이든 편하게 말씀해 주세요.",
	},
}
