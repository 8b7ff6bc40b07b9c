package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory DynamoAPI good enough for the expressions the
// services actually issue: equality and <> comparisons joined with AND/OR,
// and comma-separated SET assignments.
type fakeDynamo struct {
	mu     sync.Mutex
	tables map[string][]map[string]types.AttributeValue
}

// tableKeys names the primary key attribute per table so PutItem can
// replace instead of append.
var tableKeys = map[string]string{
	"Accounts":          "email",
	"ConfirmationCodes": "email",
	"Messages":          "messageId",
	"Subscriptions":     "userId",
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: make(map[string][]map[string]types.AttributeValue)}
}

func newTestDynamo() (*DynamoService, *fakeDynamo) {
	fake := newFakeDynamo()
	return &DynamoService{Client: fake}, fake
}

func keyAttribute(table string) string {
	if key, ok := tableKeys[table]; ok {
		return key
	}
	return "id"
}

func attrEqual(a, b types.AttributeValue) bool {
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		bv, ok := b.(*types.AttributeValueMemberS)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberN:
		bv, ok := b.(*types.AttributeValueMemberN)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberBOOL:
		bv, ok := b.(*types.AttributeValueMemberBOOL)
		return ok && av.Value == bv.Value
	}
	return false
}

func (f *fakeDynamo) find(table string, key map[string]types.AttributeValue) int {
	for i, item := range f.tables[table] {
		matched := true
		for name, want := range key {
			got, ok := item[name]
			if !ok || !attrEqual(got, want) {
				matched = false
				break
			}
		}
		if matched {
			return i
		}
	}
	return -1
}

func (f *fakeDynamo) GetItem(ctx context.Context, input *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	index := f.find(*input.TableName, input.Key)
	if index < 0 {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: f.tables[*input.TableName][index]}, nil
}

func (f *fakeDynamo) PutItem(ctx context.Context, input *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := *input.TableName
	keyName := keyAttribute(table)
	if input.ConditionExpression != nil {
		// Only attribute_not_exists(#k) is ever issued.
		for _, resolved := range input.ExpressionAttributeNames {
			keyName = resolved
		}
		if key, ok := input.Item[keyName]; ok {
			if f.find(table, map[string]types.AttributeValue{keyName: key}) >= 0 {
				return nil, &types.ConditionalCheckFailedException{}
			}
		}
	}

	if key, ok := input.Item[keyName]; ok {
		if index := f.find(table, map[string]types.AttributeValue{keyName: key}); index >= 0 {
			f.tables[table][index] = input.Item
			return &dynamodb.PutItemOutput{}, nil
		}
	}
	f.tables[table] = append(f.tables[table], input.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(ctx context.Context, input *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := *input.TableName
	index := f.find(table, input.Key)
	if index < 0 {
		return &dynamodb.UpdateItemOutput{}, nil
	}

	item := f.tables[table][index]
	expr := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(*input.UpdateExpression), "SET"))
	for _, assignment := range strings.Split(expr, ",") {
		parts := strings.SplitN(assignment, "=", 2)
		if len(parts) != 2 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		if resolved, ok := input.ExpressionAttributeNames[name]; ok {
			name = resolved
		}
		placeholder := strings.TrimSpace(parts[1])
		if value, ok := input.ExpressionAttributeValues[placeholder]; ok {
			item[name] = value
		}
	}
	f.tables[table][index] = item
	return &dynamodb.UpdateItemOutput{Attributes: item}, nil
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, input *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table := *input.TableName
	index := f.find(table, input.Key)
	if index >= 0 {
		f.tables[table] = append(f.tables[table][:index], f.tables[table][index+1:]...)
	}
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Scan(ctx context.Context, input *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// The real service rejects a present-but-empty alias map.
	if input.ExpressionAttributeNames != nil && len(input.ExpressionAttributeNames) == 0 {
		return nil, fmt.Errorf("ValidationException: ExpressionAttributeNames must not be empty")
	}

	var matched []map[string]types.AttributeValue
	for _, item := range f.tables[*input.TableName] {
		if input.FilterExpression == nil ||
			evalExpression(*input.FilterExpression, item, input.ExpressionAttributeValues, input.ExpressionAttributeNames) {
			matched = append(matched, item)
		}
	}
	return &dynamodb.ScanOutput{Items: matched, Count: int32(len(matched))}, nil
}

func (f *fakeDynamo) Query(ctx context.Context, input *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []map[string]types.AttributeValue
	for _, item := range f.tables[*input.TableName] {
		if input.KeyConditionExpression == nil ||
			evalExpression(*input.KeyConditionExpression, item, input.ExpressionAttributeValues, input.ExpressionAttributeNames) {
			matched = append(matched, item)
		}
	}
	return &dynamodb.QueryOutput{Items: matched, Count: int32(len(matched))}, nil
}

// evalExpression evaluates the comparison grammar the services use:
// factor := '(' expr ')' | name ('=' | '<>') placeholder
// term   := factor (AND factor)*
// expr   := term (OR term)*
func evalExpression(expr string, item map[string]types.AttributeValue, values map[string]types.AttributeValue, names map[string]string) bool {
	spaced := strings.NewReplacer("(", " ( ", ")", " ) ").Replace(expr)
	parser := &exprParser{tokens: strings.Fields(spaced), item: item, values: values, names: names}
	return parser.parseOr()
}

type exprParser struct {
	tokens []string
	pos    int
	item   map[string]types.AttributeValue
	values map[string]types.AttributeValue
	names  map[string]string
}

func (p *exprParser) next() string {
	if p.pos >= len(p.tokens) {
		return ""
	}
	token := p.tokens[p.pos]
	p.pos++
	return token
}

func (p *exprParser) peek() string {
	if p.pos >= len(p.tokens) {
		return ""
	}
	return p.tokens[p.pos]
}

func (p *exprParser) parseOr() bool {
	result := p.parseAnd()
	for strings.EqualFold(p.peek(), "OR") {
		p.next()
		result = p.parseAnd() || result
	}
	return result
}

func (p *exprParser) parseAnd() bool {
	result := p.parseFactor()
	for strings.EqualFold(p.peek(), "AND") {
		p.next()
		result = p.parseFactor() && result
	}
	return result
}

func (p *exprParser) parseFactor() bool {
	token := p.next()
	if token == "(" {
		result := p.parseOr()
		p.next() // closing paren
		return result
	}

	name := token
	if resolved, ok := p.names[name]; ok {
		name = resolved
	}
	operator := p.next()
	placeholder := p.next()

	got, hasAttr := p.item[name]
	want, hasValue := p.values[placeholder]
	if !hasValue {
		return false
	}
	equal := hasAttr && attrEqual(got, want)
	if operator == "<>" {
		return !equal
	}
	return equal
}
